// Package logger builds the zap logger shared by the server and the CLI.
package logger

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cpu-scheduler/config"
)

// atomicLevel is the level shared by every core built here
var atomicLevel = zap.NewAtomicLevel()

// Build sets up the base logger: info and below go to stdout, errors to stderr.
func Build(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	atomicLevel.SetLevel(level.Level())

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return atomicLevel.Enabled(lvl) && lvl >= zapcore.ErrorLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return atomicLevel.Enabled(lvl) && lvl < zapcore.ErrorLevel
	})

	infoCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lowPriority)
	errorCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), highPriority)

	logger := zap.New(zapcore.NewTee(infoCore, errorCore), zap.AddCaller())
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// WatchLevel follows logger.level in the config file viper loaded.
func WatchLevel() {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(in fsnotify.Event) {
		if in.Op&fsnotify.Write != 0 {
			SetLevel(viper.GetString("logger.level"))
		}
	})
	viper.WatchConfig()
}

// SetLevel changes the level of every logger built by Build.
func SetLevel(level string) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		zap.L().Error("Couldn't parse level", zap.Error(err))
		return
	}
	atomicLevel.SetLevel(l)
	zap.L().Info("Log level updated", zap.String("value", level))
}

// Level reports the current shared level.
func Level() zapcore.Level {
	return atomicLevel.Level()
}
