package shooters

import (
	"time"

	"ShotFormGolang/internal/entity"
)

type CreateShooterRequest struct {
	Name       string                  `json:"name" validate:"required,min=2,max=128"`
	Team       string                  `json:"team" validate:"omitempty,max=128"`
	Position   string                  `json:"position" validate:"omitempty,max=32"`
	ImageURL   string                  `json:"image_url" validate:"omitempty,url"`
	Benchmarks []entity.BenchmarkRange `json:"benchmarks" validate:"required,min=1,dive"`
}

type UpdateShooterRequest struct {
	Name       string                  `json:"name" validate:"omitempty,min=2,max=128"`
	Team       string                  `json:"team" validate:"omitempty,max=128"`
	Position   string                  `json:"position" validate:"omitempty,max=32"`
	ImageURL   string                  `json:"image_url" validate:"omitempty,url"`
	Benchmarks []entity.BenchmarkRange `json:"benchmarks" validate:"omitempty,min=1,dive"`
}

type ShooterResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Team       string                  `json:"team,omitempty"`
	Position   string                  `json:"position,omitempty"`
	ImageURL   string                  `json:"image_url,omitempty"`
	Benchmarks []entity.BenchmarkRange `json:"benchmarks"`
	CreatedAt  time.Time               `json:"created_at"`
}

type ShooterListResponse struct {
	Shooters []ShooterResponse `json:"shooters"`
}
