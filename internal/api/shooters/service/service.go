package shootersService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	analysisRepository "ShotFormGolang/internal/api/analysis/repository"
	"ShotFormGolang/internal/api/shooters"
	shootersRepository "ShotFormGolang/internal/api/shooters/repository"
	"ShotFormGolang/internal/entity"
	"ShotFormGolang/pkg/redis"
	"ShotFormGolang/pkg/utils"
)

type ShooterService interface {
	CreateShooter(ctx context.Context, req shooters.CreateShooterRequest) (shooters.ShooterResponse, error)
	GetShooters(ctx context.Context) (shooters.ShooterListResponse, error)
	GetShooter(ctx context.Context, id string) (shooters.ShooterResponse, error)
	UpdateShooter(ctx context.Context, id string, req shooters.UpdateShooterRequest) (shooters.ShooterResponse, error)
	DeleteShooter(ctx context.Context, id string) error
	CompareAnalysis(ctx context.Context, userID, shooterID, analysisID string) (entity.ShooterComparison, error)
}

type shooterService struct {
	log                *logrus.Logger
	shooterRepository  shootersRepository.Repository
	analysisRepository analysisRepository.Repository
	redisClient        redis.IRedis
	utils              utils.IUtils
}

func New(
	log *logrus.Logger,
	shooterRepo shootersRepository.Repository,
	analysisRepo analysisRepository.Repository,
	redisClient redis.IRedis,
	utils utils.IUtils,
) ShooterService {
	return &shooterService{
		log:                log,
		shooterRepository:  shooterRepo,
		analysisRepository: analysisRepo,
		redisClient:        redisClient,
		utils:              utils,
	}
}
