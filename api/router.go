package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"cpu-simulator/config"
	"cpu-simulator/internal/metrics"
	"cpu-simulator/internal/requests"
	"cpu-simulator/internal/responses"
	"cpu-simulator/internal/schedulers"
)

// NewApp builds the fiber application with every route mounted.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger, recorder *metrics.PrometheusRecorder) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-simulator",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	engine := schedulers.NewEngine(logger, recorder)
	handler := NewSchedulerHandlerImpl(engine, requests.Limits{MaxDispatches: cfg.MaxRoundRobinDispatches}, recorder, logger)

	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Post("/schedule", handler.Schedule)
	api.Post("/compare", handler.AllAlgorithms)

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}

// ErrorHandler renders every error as a responses.APIError body.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var apiErr *responses.APIError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &apiErr):
			status := fiber.StatusBadRequest
			if apiErr.Code == responses.ErrInternal {
				status = fiber.StatusInternalServerError
			}
			return ctx.Status(status).JSON(apiErr)
		case errors.As(err, &fiberErr):
			code := responses.ErrInternal
			switch {
			case fiberErr.Code == fiber.StatusNotFound:
				code = responses.ErrNotFound
			case fiberErr.Code < fiber.StatusInternalServerError:
				code = responses.ErrValidation
			}
			return ctx.Status(fiberErr.Code).JSON(&responses.APIError{Code: code, Message: fiberErr.Message})
		}

		logger.Error("request failed", "request_id", ctx.Locals("requestid"), "path", ctx.Path(), "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(responses.NewInternalError("can not process request"))
	}
}
