package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"cpu-scheduler/config"
	"cpu-scheduler/config/logger"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func main() {
	var (
		file       = pflag.StringP("file", "f", "", "CSV file of arrival,burst[,priority] rows (default stdin)")
		algorithm  = pflag.StringP("algorithm", "a", "", "scheduling algorithm (default from config)")
		all        = pflag.Bool("all", false, "run every available algorithm")
		quantum    = pflag.IntP("quantum", "q", 0, "round robin time quantum (default from config)")
		configPath = pflag.StringP("config", "c", "", "config file (default ./config.yaml)")
	)
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Logger.Encoding = "console"
	baseLogger, err := logger.Build(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer baseLogger.Sync()

	if err := run(os.Stdout, cfg, *file, *algorithm, *all, *quantum); err != nil {
		zap.L().Fatal("simulation failed", zap.Error(err))
	}
}

func run(w io.Writer, cfg *config.SchedulerConfig, file, algorithm string, all bool, quantum int) error {
	in, closeFile, err := openProcessingFile(file)
	if err != nil {
		return err
	}
	defer closeFile()

	jobs, err := requests.ParseCSV(in)
	if err != nil {
		return err
	}
	request := requests.ScheduleRequests{Jobs: jobs}
	if err := request.Validate(cfg.MaxProcesses); err != nil {
		return err
	}
	processes := request.Processes()

	algorithms := schedulers.GetAvailableAlgorithms()
	if !all {
		if algorithm == "" {
			algorithm = cfg.DefaultAlgorithm
		}
		parsed, err := schedulers.ParseAlgorithm(algorithm)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{parsed}
	}

	opts := schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if quantum > 0 {
		opts.TimeQuantum = quantum
	}

	for _, a := range algorithms {
		scheduler, err := schedulers.NewScheduler(a, opts)
		if err != nil {
			return err
		}
		timeline := scheduler.Schedule(processes)
		results, aggregates := schedulers.ComputeMetrics(processes, timeline)

		report.WriteTitle(w, string(a))
		report.WriteGantt(w, timeline)
		report.WriteResults(w, results, aggregates)
	}
	return nil
}

func openProcessingFile(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening scheduling file: %w", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			zap.L().Error("closing scheduling file", zap.Error(err))
		}
	}
	return f, closeFn, nil
}
