package coachingHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	coachingService "ShotFormGolang/internal/api/coaching/service"
	"ShotFormGolang/internal/middleware"
)

type CoachingHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	coachingService coachingService.CoachingService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs coachingService.CoachingService,
) *CoachingHandler {
	return &CoachingHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		coachingService: cs,
	}
}

func (h *CoachingHandler) Start(srv fiber.Router) {
	coaching := srv.Group("/coaching")
	coaching.Get("/personas", h.HandleListPersonas)
	coaching.Post("/:analysisId", h.middleware.NewTokenMiddleware, h.HandleGenerateCoaching)
}
