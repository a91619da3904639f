package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"ShotFormGolang/database/postgres"
	analysisHandler "ShotFormGolang/internal/api/analysis/handler"
	analysisRepository "ShotFormGolang/internal/api/analysis/repository"
	analysisService "ShotFormGolang/internal/api/analysis/service"
	authHandler "ShotFormGolang/internal/api/auth/handler"
	authRepository "ShotFormGolang/internal/api/auth/repository"
	authService "ShotFormGolang/internal/api/auth/service"
	coachingHandler "ShotFormGolang/internal/api/coaching/handler"
	coachingService "ShotFormGolang/internal/api/coaching/service"
	shootersHandler "ShotFormGolang/internal/api/shooters/handler"
	shootersRepository "ShotFormGolang/internal/api/shooters/repository"
	shootersService "ShotFormGolang/internal/api/shooters/service"
	"ShotFormGolang/internal/middleware"
	"ShotFormGolang/pkg/bcrypt"
	"ShotFormGolang/pkg/gemini"
	"ShotFormGolang/pkg/google"
	openaiPkg "ShotFormGolang/pkg/openai"
	"ShotFormGolang/pkg/pose"
	"ShotFormGolang/pkg/redis"
	"ShotFormGolang/pkg/roboflow"
	"ShotFormGolang/pkg/s3"
	"ShotFormGolang/pkg/smtp"
	"ShotFormGolang/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	poseClient     pose.IPoseClient
	roboflowClient roboflow.IRoboflow
	coachAI        openaiPkg.ICoachAI
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithPoseClient(poseClient pose.IPoseClient) ServerOption {
	return func(s *Server) error {
		s.poseClient = poseClient
		return nil
	}
}

func WithRoboflowClient() ServerOption {
	return func(s *Server) error {
		s.roboflowClient = roboflow.New()
		return nil
	}
}

func WithCoachAI() ServerOption {
	return func(s *Server) error {
		s.coachAI = openaiPkg.NewCoachAI()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Analysis Domain
	analysisRepo := analysisRepository.New(s.db, s.log)
	analysisServices := analysisService.New(s.log, analysisRepo, s.poseClient, s.roboflowClient, s.geminiClient, s.s3Client, s.smtpMailer, s.utils)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices, s.utils)

	// Shooters Domain
	shooterRepo := shootersRepository.New(s.db, s.log)
	shooterServices := shootersService.New(s.log, shooterRepo, analysisRepo, s.redisServer, s.utils)
	shooterHandlers := shootersHandler.New(s.log, s.validator, s.middleware, shooterServices)

	// Coaching Domain
	coachingServices := coachingService.New(s.log, analysisRepo, s.coachAI)
	coachingHandlers := coachingHandler.New(s.log, s.validator, s.middleware, coachingServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, analysisHandlers, shooterHandlers, coachingHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.poseClient != nil {
			s.poseClient.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
