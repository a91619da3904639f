package shootersRepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"ShotFormGolang/internal/api/shooters"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
)

type ShooterDB struct {
	ID         sql.NullString `db:"id"`
	Name       sql.NullString `db:"name"`
	Team       sql.NullString `db:"team"`
	Position   sql.NullString `db:"position"`
	ImageURL   sql.NullString `db:"image_url"`
	Benchmarks []byte         `db:"benchmarks"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r *shootersRepository) CreateShooter(ctx context.Context, shooter entity.ProShooter) error {
	requestID := contextPkg.GetRequestID(ctx)

	benchmarksJSON, err := json.Marshal(shooter.Benchmarks)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal shooter benchmarks")
		return err
	}

	argsKV := map[string]interface{}{
		"id":         shooter.ID,
		"name":       shooter.Name,
		"team":       shooter.Team,
		"position":   shooter.Position,
		"image_url":  shooter.ImageURL,
		"benchmarks": benchmarksJSON,
		"created_at": shooter.CreatedAt,
		"updated_at": shooter.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateShooter, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateShooter")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating shooter")
		return err
	}

	return nil
}

func (r *shootersRepository) GetByID(ctx context.Context, id string) (entity.ProShooter, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row ShooterDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetShooterByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.ProShooter{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ProShooter{}, shooters.ErrShooterNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.ProShooter{}, err
	}

	return r.makeShooter(requestID, row), nil
}

func (r *shootersRepository) GetAll(ctx context.Context) ([]entity.ProShooter, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ShooterDB

	query := r.q.Rebind(queryGetAllShooters)

	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAll execution err")
		return nil, err
	}

	list := make([]entity.ProShooter, 0, len(rows))
	for _, row := range rows {
		list = append(list, r.makeShooter(requestID, row))
	}

	return list, nil
}

func (r *shootersRepository) UpdateShooter(ctx context.Context, shooter entity.ProShooter) error {
	requestID := contextPkg.GetRequestID(ctx)

	benchmarksJSON, err := json.Marshal(shooter.Benchmarks)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal shooter benchmarks")
		return err
	}

	argsKV := map[string]interface{}{
		"id":         shooter.ID,
		"name":       shooter.Name,
		"team":       shooter.Team,
		"position":   shooter.Position,
		"image_url":  shooter.ImageURL,
		"benchmarks": benchmarksJSON,
		"updated_at": shooter.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateShooter, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateShooter named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating shooter")
		return err
	}

	return nil
}

func (r *shootersRepository) DeleteShooter(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteShooter, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteShooter named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting shooter")
		return err
	}

	return nil
}

func (r *shootersRepository) makeShooter(requestID string, row ShooterDB) entity.ProShooter {
	var benchmarks []entity.BenchmarkRange
	if len(row.Benchmarks) > 0 {
		if err := json.Unmarshal(row.Benchmarks, &benchmarks); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"shooter_id": row.ID.String,
				"error":      err.Error(),
			}).Error("Failed to unmarshal shooter benchmarks")
		}
	}

	return entity.ProShooter{
		ID:         row.ID.String,
		Name:       row.Name.String,
		Team:       row.Team.String,
		Position:   row.Position.String,
		ImageURL:   row.ImageURL.String,
		Benchmarks: benchmarks,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
