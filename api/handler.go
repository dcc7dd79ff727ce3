package api

import (
	"bytes"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var errInvalidFormat = errors.New("invalid request format")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	SimulateCSV(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	options schedulers.Options
	log     *zap.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		options: schedulers.Options{
			TimeQuantum:       config.RoundRobinTimeQuantum,
			LevelsTimeQuantum: config.MultilevelFeedbackQueueLevelsTimeQuantum,
		},
		log: log,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MLFQ)
}

// Simulate takes the algorithm from the request body, falling back to the
// configured default.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	name := request.Algorithm
	if name == "" {
		name = s.config.DefaultAlgorithm
	}
	algorithm, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.respond(ctx, request.Processes(), algorithm)
}

// SimulateCSV accepts a raw CSV body of arrival,burst[,priority] rows.
func (s *SchedulerHandlerImpl) SimulateCSV(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Query("algorithm", s.config.DefaultAlgorithm))
	if err != nil {
		return badRequest(ctx, err)
	}
	jobs, err := requests.ParseCSV(bytes.NewReader(ctx.Body()))
	if err != nil {
		return badRequest(ctx, err)
	}
	request := requests.ScheduleRequests{Algorithm: string(algorithm), Jobs: jobs}
	if err := request.Validate(s.config.MaxProcesses); err != nil {
		return badRequest(ctx, err)
	}
	return s.respond(ctx, request.Processes(), algorithm)
}

// AllAlgorithms runs every algorithm concurrently over the same process set.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	processes := request.Processes()

	algorithms := schedulers.GetAvailableAlgorithms()
	results := make([]responses.ScheduleResponse, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm schedulers.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = s.run(processes, algorithm)
		}(i, algorithm)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		s.log.Error("can not process request", zap.Error(err))
		return fiber.NewError(http.StatusInternalServerError, "can not process request")
	}

	response := make(map[string]responses.ScheduleResponse, len(algorithms))
	for i, algorithm := range algorithms {
		response[string(algorithm)] = results[i]
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"algorithms": schedulers.GetAvailableAlgorithms(),
		"default":    s.config.DefaultAlgorithm,
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.respond(ctx, request.Processes(), algorithm)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, errInvalidFormat
	}
	if err := request.Validate(s.config.MaxProcesses); err != nil {
		return request, err
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, processes []core.Process, algorithm schedulers.Algorithm) error {
	response, err := s.run(processes, algorithm)
	if err != nil {
		s.log.Error("can not process request", zap.String("algorithm", string(algorithm)), zap.Error(err))
		return fiber.NewError(http.StatusInternalServerError, "can not process request")
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(processes []core.Process, algorithm schedulers.Algorithm) (responses.ScheduleResponse, error) {
	scheduler, err := schedulers.NewScheduler(algorithm, s.options)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	runID := uuid.NewString()
	start := time.Now()
	timeline := scheduler.Schedule(processes)
	results, aggregates := schedulers.ComputeMetrics(processes, timeline)

	s.log.Info("simulation finished",
		zap.String("run_id", runID),
		zap.String("algorithm", string(algorithm)),
		zap.Int("processes", len(processes)),
		zap.Int("blocks", len(timeline)),
		zap.Int("makespan", aggregates.Makespan),
		zap.Float64("cpu_utilization", aggregates.CPUUtilization),
		zap.Duration("elapsed", time.Since(start)))

	return responses.NewScheduleResponse(runID, string(algorithm), timeline, results, aggregates), nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
