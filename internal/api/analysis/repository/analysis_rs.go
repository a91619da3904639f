package analysisRepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"ShotFormGolang/internal/api/analysis"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
)

type AnalysisDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	MediaURL  sql.NullString `db:"media_url"`
	ShotType  sql.NullString `db:"shot_type"`
	Result    []byte         `db:"result"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *analysesRepository) CreateAnalysis(ctx context.Context, a entity.Analysis) error {
	requestID := contextPkg.GetRequestID(ctx)

	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal analysis result")
		return err
	}

	argsKV := map[string]interface{}{
		"id":         a.ID,
		"user_id":    a.UserID,
		"media_url":  a.MediaURL,
		"shot_type":  a.ShotType,
		"result":     resultJSON,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAnalysis, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAnalysis")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating analysis")
		return err
	}

	return nil
}

func (r *analysesRepository) GetByID(ctx context.Context, id string) (entity.Analysis, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row AnalysisDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetAnalysisByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Analysis{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Analysis{}, analysis.ErrAnalysisNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Analysis{}, err
	}

	return r.makeAnalysis(requestID, row), nil
}

func (r *analysesRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.Analysis, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []AnalysisDB

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetAnalysesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	analyses := make([]entity.Analysis, 0, len(rows))
	for _, row := range rows {
		analyses = append(analyses, r.makeAnalysis(requestID, row))
	}

	return analyses, nil
}

func (r *analysesRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryCountAnalysesByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByUserID named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountByUserID execution err")
		return 0, err
	}

	return total, nil
}

func (r *analysesRepository) DeleteAnalysis(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteAnalysis, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAnalysis named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting analysis")
		return err
	}

	return nil
}

func (r *analysesRepository) makeAnalysis(requestID string, row AnalysisDB) entity.Analysis {
	var result entity.FormAnalysisResult
	if len(row.Result) > 0 {
		if err := json.Unmarshal(row.Result, &result); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"analysis_id": row.ID.String,
				"error":       err.Error(),
			}).Error("Failed to unmarshal stored analysis result")
		}
	}

	return entity.Analysis{
		ID:        row.ID.String,
		UserID:    row.UserID.String,
		MediaURL:  row.MediaURL.String,
		ShotType:  row.ShotType.String,
		Result:    result,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
