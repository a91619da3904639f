package shootersService

import (
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/shooters"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
	"ShotFormGolang/pkg/log"
	"ShotFormGolang/pkg/redis"
)

const (
	shooterListCacheKey = "shooters:all"
	shooterListCacheTTL = 10 * time.Minute
)

func (s *shooterService) CreateShooter(ctx context.Context, req shooters.CreateShooterRequest) (shooters.ShooterResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	shooter := entity.ProShooter{
		ID:         id,
		Name:       req.Name,
		Team:       req.Team,
		Position:   req.Position,
		ImageURL:   req.ImageURL,
		Benchmarks: req.Benchmarks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	repo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	if err := repo.Shooters.CreateShooter(ctx, shooter); err != nil {
		return shooters.ShooterResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"shooter_id": id,
		"name":       req.Name,
	}).Info("Shooter created")

	return makeShooterResponse(shooter), nil
}

func (s *shooterService) GetShooters(ctx context.Context) (shooters.ShooterListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.redisClient.GetCache(ctx, shooterListCacheKey)
	if err == nil {
		var resp shooters.ShooterListResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return resp, nil
		}
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Shooter list cache read failed")
	}

	repo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return shooters.ShooterListResponse{}, err
	}

	list, err := repo.Shooters.GetAll(ctx)
	if err != nil {
		return shooters.ShooterListResponse{}, err
	}

	resp := shooters.ShooterListResponse{
		Shooters: make([]shooters.ShooterResponse, 0, len(list)),
	}
	for _, shooter := range list {
		resp.Shooters = append(resp.Shooters, makeShooterResponse(shooter))
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.redisClient.SetCache(ctx, shooterListCacheKey, string(payload), shooterListCacheTTL); err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Shooter list cache write failed")
		}
	}

	return resp, nil
}

func (s *shooterService) GetShooter(ctx context.Context, id string) (shooters.ShooterResponse, error) {
	repo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	shooter, err := repo.Shooters.GetByID(ctx, id)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	return makeShooterResponse(shooter), nil
}

func (s *shooterService) UpdateShooter(ctx context.Context, id string, req shooters.UpdateShooterRequest) (shooters.ShooterResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	shooter, err := repo.Shooters.GetByID(ctx, id)
	if err != nil {
		return shooters.ShooterResponse{}, err
	}

	if req.Name != "" {
		shooter.Name = req.Name
	}
	if req.Team != "" {
		shooter.Team = req.Team
	}
	if req.Position != "" {
		shooter.Position = req.Position
	}
	if req.ImageURL != "" {
		shooter.ImageURL = req.ImageURL
	}
	if len(req.Benchmarks) > 0 {
		shooter.Benchmarks = req.Benchmarks
	}
	shooter.UpdatedAt = time.Now()

	if err := repo.Shooters.UpdateShooter(ctx, shooter); err != nil {
		return shooters.ShooterResponse{}, err
	}

	s.invalidateListCache(ctx)

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"shooter_id": id,
	}).Info("Shooter updated")

	return makeShooterResponse(shooter), nil
}

func (s *shooterService) DeleteShooter(ctx context.Context, id string) error {
	repo, err := s.shooterRepository.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := repo.Shooters.GetByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Shooters.DeleteShooter(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *shooterService) invalidateListCache(ctx context.Context) {
	if err := s.redisClient.DeleteCache(ctx, shooterListCacheKey); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Shooter list cache invalidation failed")
	}
}

func makeShooterResponse(shooter entity.ProShooter) shooters.ShooterResponse {
	return shooters.ShooterResponse{
		ID:         shooter.ID,
		Name:       shooter.Name,
		Team:       shooter.Team,
		Position:   shooter.Position,
		ImageURL:   shooter.ImageURL,
		Benchmarks: shooter.Benchmarks,
		CreatedAt:  shooter.CreatedAt,
	}
}
