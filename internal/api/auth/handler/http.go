package authHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authService "ShotFormGolang/internal/api/auth/service"
	"ShotFormGolang/internal/middleware"
	"ShotFormGolang/pkg/google"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/register", h.middleware.NewRateLimiter, h.HandleRegister)
	auth.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)
	auth.Get("/profile", h.middleware.NewTokenMiddleware, h.HandleGetProfile)
}
