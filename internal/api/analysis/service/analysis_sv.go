package analysisService

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/analysis"
	"ShotFormGolang/internal/entity"
	contextPkg "ShotFormGolang/pkg/context"
	"ShotFormGolang/pkg/log"
)

const shotContextPrompt = `
	Look at this basketball shooting photo and describe the shot in JSON.
	Format:
	{
		"shot_type": "jump shot/free throw/three pointer/layup/unknown",
		"phase": "setup/release/follow-through/unknown",
		"handed": "right/left/unknown"
	}
	Return ONLY the JSON, no extra text.
	`

func (s *analysisService) AnalyzeUpload(ctx context.Context, userID string, file *multipart.FileHeader) (analysis.AnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateMediaFile(file); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"file_name":  file.Filename,
			"error":      err.Error(),
		}).Warn("Rejected media upload")
		return analysis.AnalysisResponse{}, analysis.ErrInvalidMediaFile
	}

	fileContent, err := file.Open()
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}
	defer fileContent.Close()

	base64Image, err := s.utils.ConvertFileToBase64(fileContent)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	mediaURL, err := s.s3Client.UploadFile(file)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"file_name":  file.Filename,
			"error":      err.Error(),
		}).Error("Failed to upload media to S3")
		return analysis.AnalysisResponse{}, analysis.ErrFailedToUploadMedia
	}

	return s.runPipeline(ctx, userID, base64Image, mediaURL, "")
}

func (s *analysisService) AnalyzeImage(ctx context.Context, userID string, req analysis.AnalyzeImageRequest) (analysis.AnalysisResponse, error) {
	return s.runPipeline(ctx, userID, req.ImageBase64, "", req.ShotType)
}

// runPipeline is the full scoring path for a still frame: pose detection,
// best-effort ball detection and shot-context extraction, scoring, persistence.
func (s *analysisService) runPipeline(ctx context.Context, userID, base64Image, mediaURL, shotTypeHint string) (analysis.AnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	frame, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return analysis.AnalysisResponse{}, errors.New("invalid base64 image")
	}

	poseResult, err := s.poseClient.DetectPose(frame)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Pose detection failed")
		return analysis.AnalysisResponse{}, analysis.ErrPoseServiceUnavailable
	}

	if len(poseResult.Keypoints) == 0 {
		return analysis.AnalysisResponse{}, analysis.ErrNoPersonDetected
	}

	var ball *entity.BallDetection
	ball, err = s.roboflowClient.DetectBall(ctx, base64Image)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Ball detection failed, scoring without release height")
		ball = nil
	}

	result := s.analyzer.Analyze(poseResult.Keypoints, ball)

	shotType := shotTypeHint
	if shotType == "" {
		if shotCtx := s.extractShotContext(ctx, base64Image); shotCtx != nil {
			shotType = shotCtx.ShotType
		}
	}

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	a := entity.Analysis{
		ID:        id,
		UserID:    userID,
		MediaURL:  mediaURL,
		ShotType:  shotType,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	if err := repo.Analyses.CreateAnalysis(ctx, a); err != nil {
		return analysis.AnalysisResponse{}, err
	}

	s.log.WithFields(log.Fields{
		"request_id":    requestID,
		"analysis_id":   id,
		"overall_score": result.OverallScore,
		"category":      result.Category,
		"total_metrics": result.TotalMetrics,
	}).Info("Analysis completed")

	return s.makeResponse(a), nil
}

func (s *analysisService) AnalyzeKeypoints(ctx context.Context, userID string, req analysis.AnalyzeKeypointsRequest) (analysis.AnalysisResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	result := s.analyzer.Analyze(req.Keypoints, req.Ball)

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	a := entity.Analysis{
		ID:        id,
		UserID:    userID,
		Result:    result,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	if err := repo.Analyses.CreateAnalysis(ctx, a); err != nil {
		return analysis.AnalysisResponse{}, err
	}

	s.log.WithFields(log.Fields{
		"request_id":    requestID,
		"analysis_id":   id,
		"overall_score": result.OverallScore,
		"category":      result.Category,
	}).Info("Keypoint analysis completed")

	return s.makeResponse(a), nil
}

func (s *analysisService) GetAnalyses(ctx context.Context, userID string, page, limit int) (analysis.AnalysisListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return analysis.AnalysisListResponse{}, err
	}

	analyses, err := repo.Analyses.GetByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return analysis.AnalysisListResponse{}, err
	}

	total, err := repo.Analyses.CountByUserID(ctx, userID)
	if err != nil {
		return analysis.AnalysisListResponse{}, err
	}

	resp := analysis.AnalysisListResponse{
		Analyses: make([]analysis.AnalysisResponse, 0, len(analyses)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for _, a := range analyses {
		resp.Analyses = append(resp.Analyses, s.makeResponse(a))
	}

	return resp, nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, userID, id string) (analysis.AnalysisResponse, error) {
	a, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return analysis.AnalysisResponse{}, err
	}

	return s.makeResponse(a), nil
}

func (s *analysisService) DeleteAnalysis(ctx context.Context, userID, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	a, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if a.MediaURL != "" {
		if err := s.s3Client.DeleteFile(a.MediaURL); err != nil {
			s.log.WithFields(log.Fields{
				"request_id":  requestID,
				"analysis_id": id,
				"error":       err.Error(),
			}).Warn("Failed to delete analysis media from S3")
		}
	}

	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Analyses.DeleteAnalysis(ctx, id)
}

func (s *analysisService) EmailReport(ctx context.Context, userID, userEmail, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	a, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.smtpMailer.SendAnalysisReport(userEmail, a); err != nil {
		s.log.WithFields(log.Fields{
			"request_id":  requestID,
			"analysis_id": id,
			"error":       err.Error(),
		}).Error("Failed to send analysis report email")
		return err
	}

	return nil
}

// ProcessLiveFrame scores a single frame without persistence. Used by the
// live websocket endpoint, so it skips ball detection and the vision model.
func (s *analysisService) ProcessLiveFrame(frame []byte) (*entity.FormAnalysisResult, error) {
	poseResult, err := s.poseClient.DetectPose(frame)
	if err != nil {
		return nil, err
	}

	if len(poseResult.Keypoints) == 0 {
		return nil, analysis.ErrNoPersonDetected
	}

	result := s.analyzer.Analyze(poseResult.Keypoints, nil)
	return &result, nil
}

func (s *analysisService) getOwned(ctx context.Context, userID, id string) (entity.Analysis, error) {
	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return entity.Analysis{}, err
	}

	a, err := repo.Analyses.GetByID(ctx, id)
	if err != nil {
		return entity.Analysis{}, err
	}

	if a.UserID != userID {
		return entity.Analysis{}, analysis.ErrAnalysisNotOwned
	}

	return a, nil
}

func (s *analysisService) extractShotContext(ctx context.Context, base64Image string) *entity.ShotContext {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := s.geminiClient.AnalyzeImage(ctx, base64Image, shotContextPrompt)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Shot context extraction failed")
		return nil
	}

	jsonStart := strings.Index(raw, "{")
	jsonEnd := strings.LastIndex(raw, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil
	}

	var shotCtx entity.ShotContext
	if err := json.Unmarshal([]byte(raw[jsonStart:jsonEnd+1]), &shotCtx); err != nil {
		return nil
	}

	return &shotCtx
}

func (s *analysisService) makeResponse(a entity.Analysis) analysis.AnalysisResponse {
	mediaURL := a.MediaURL
	if mediaURL != "" {
		if presigned, err := s.s3Client.PresignUrl(mediaURL); err == nil {
			mediaURL = presigned
		}
	}

	return analysis.AnalysisResponse{
		ID:        a.ID,
		MediaURL:  mediaURL,
		ShotType:  a.ShotType,
		Result:    a.Result,
		CreatedAt: a.CreatedAt,
	}
}
