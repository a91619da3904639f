package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ShotFormGolang/internal/config"
	"ShotFormGolang/pkg/google"
	"ShotFormGolang/pkg/log"
	"ShotFormGolang/pkg/pose"
	"ShotFormGolang/pkg/redis"
	"ShotFormGolang/pkg/smtp"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	googleProvider := google.New()
	redisServer := redis.New()
	smtpMailer := smtp.New()
	poseClient := pose.NewPoseClient()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithGoogleProvider(googleProvider),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithPoseClient(poseClient),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithRoboflowClient(),
		config.WithGeminiClient(),
		config.WithCoachAI(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	poseClient.Close()
}
