package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-simulator/internal/metrics"
	"cpu-simulator/internal/requests"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	engine   *schedulers.Engine
	limits   requests.Limits
	recorder metrics.Recorder
	logger   *slog.Logger
}

func NewSchedulerHandlerImpl(engine *schedulers.Engine, limits requests.Limits, recorder metrics.Recorder, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{engine: engine, limits: limits, recorder: recorder, logger: logger}
}

// Schedule runs the algorithm named in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidBody(ctx, err)
	}
	return s.schedule(ctx, request)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.scheduleWith(ctx, schedulers.RoundRobin)
}

// AllAlgorithms compares the requested algorithms, or all of them, on one process set.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.CompareRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidBody(ctx, err)
	}

	algorithms, err := request.Validate(s.limits)
	if err != nil {
		return s.rejected(ctx, err)
	}

	results, err := s.engine.Compare(ctx.UserContext(), algorithms, requests.ToProcessSpecs(request.Processes), request.Options())
	if err != nil {
		return engineError(err)
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) scheduleWith(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.invalidBody(ctx, err)
	}
	request.Algorithm = string(algorithm)
	return s.schedule(ctx, request)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, request requests.ScheduleRequest) error {
	algorithm, err := request.Validate(s.limits)
	if err != nil {
		return s.rejected(ctx, err)
	}

	response, err := s.engine.Run(ctx.UserContext(), algorithm, requests.ToProcessSpecs(request.Processes), request.Options())
	if err != nil {
		return engineError(err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) invalidBody(ctx *fiber.Ctx, err error) error {
	s.recorder.RecordRejection("invalid_body")
	s.logger.Debug("invalid request body", "request_id", ctx.Locals("requestid"), "error", err)
	return &responses.APIError{Code: responses.ErrValidation, Message: "invalid request format"}
}

func (s *SchedulerHandlerImpl) rejected(ctx *fiber.Ctx, err error) error {
	s.recorder.RecordRejection("validation")
	s.logger.Debug("request rejected", "request_id", ctx.Locals("requestid"), "error", err)
	return requests.AsAPIError(err)
}

// engineError maps engine failures that slipped past validation.
func engineError(err error) error {
	if errors.Is(err, schedulers.ErrUnknownAlgorithm) || errors.Is(err, schedulers.ErrInvalidTimeQuantum) {
		return responses.NewValidationError(err.Error())
	}
	return err
}
