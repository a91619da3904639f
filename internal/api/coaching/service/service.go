package coachingService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	analysisRepository "ShotFormGolang/internal/api/analysis/repository"
	"ShotFormGolang/internal/api/coaching"
	openaiPkg "ShotFormGolang/pkg/openai"
)

type CoachingService interface {
	GenerateCoaching(ctx context.Context, userID, analysisID string, req coaching.CoachingRequest) (coaching.CoachingResponse, error)
	ListPersonas() coaching.PersonaListResponse
}

type coachingService struct {
	log                *logrus.Logger
	analysisRepository analysisRepository.Repository
	coachAI            openaiPkg.ICoachAI
}

func New(
	log *logrus.Logger,
	analysisRepo analysisRepository.Repository,
	coachAI openaiPkg.ICoachAI,
) CoachingService {
	return &coachingService{
		log:                log,
		analysisRepository: analysisRepo,
		coachAI:            coachAI,
	}
}
