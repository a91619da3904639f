package shootersHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	shootersService "ShotFormGolang/internal/api/shooters/service"
	"ShotFormGolang/internal/middleware"
)

type ShooterHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	shooterService shootersService.ShooterService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ss shootersService.ShooterService,
) *ShooterHandler {
	return &ShooterHandler{
		log:            log,
		validator:      validator,
		middleware:     middleware,
		shooterService: ss,
	}
}

func (h *ShooterHandler) Start(srv fiber.Router) {
	shooters := srv.Group("/shooters")
	shooters.Post("", h.middleware.NewTokenMiddleware, h.HandleCreateShooter)
	shooters.Get("", h.HandleListShooters)
	shooters.Get("/:id", h.HandleGetShooter)
	shooters.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateShooter)
	shooters.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteShooter)
	shooters.Get("/:id/compare/:analysisId", h.middleware.NewTokenMiddleware, h.HandleCompareAnalysis)
}
