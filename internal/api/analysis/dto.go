package analysis

import (
	"time"

	"ShotFormGolang/internal/entity"
)

type AnalyzeImageRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	ShotType    string `json:"shot_type" validate:"omitempty,max=64"`
}

type AnalyzeKeypointsRequest struct {
	Keypoints []entity.Keypoint     `json:"keypoints" validate:"required,min=1,dive"`
	Ball      *entity.BallDetection `json:"ball" validate:"omitempty"`
}

type AnalysisResponse struct {
	ID        string                    `json:"id"`
	MediaURL  string                    `json:"media_url,omitempty"`
	ShotType  string                    `json:"shot_type,omitempty"`
	Result    entity.FormAnalysisResult `json:"result"`
	CreatedAt time.Time                 `json:"created_at"`
}

type AnalysisListResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
}

type LiveFrameResponse struct {
	Result entity.FormAnalysisResult `json:"result"`
}
