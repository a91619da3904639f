package analysis

import "errors"

var (
	ErrAnalysisNotFound       = errors.New("analysis not found")
	ErrAnalysisNotOwned       = errors.New("analysis does not belong to user")
	ErrNoPersonDetected       = errors.New("no person detected in frame")
	ErrPoseServiceUnavailable = errors.New("pose detection service unavailable")
	ErrInvalidMediaFile       = errors.New("invalid media file")
	ErrFailedToUploadMedia    = errors.New("failed to upload media")
)
