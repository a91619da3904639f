package roboflow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"ShotFormGolang/internal/entity"
)

// IRoboflow calls the hosted basketball object-detection model. Only
// the highest-confidence ball prediction is returned; no detection at
// all is not an error.
type IRoboflow interface {
	DetectBall(ctx context.Context, base64Image string) (*entity.BallDetection, error)
}

type prediction struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
	Class      string  `json:"class"`
}

type detectResponse struct {
	Predictions []prediction `json:"predictions"`
}

type roboflowClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

func New() IRoboflow {
	endpoint := os.Getenv("ROBOFLOW_MODEL_URL")
	if endpoint == "" {
		endpoint = "https://detect.roboflow.com/basketball-detection/1"
	}

	return &roboflowClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		apiKey:     os.Getenv("ROBOFLOW_API_KEY"),
	}
}

func (r *roboflowClient) DetectBall(ctx context.Context, base64Image string) (*entity.BallDetection, error) {
	reqURL := fmt.Sprintf("%s?api_key=%s", r.endpoint, url.QueryEscape(r.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(base64Image))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roboflow request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roboflow returned status %d", resp.StatusCode)
	}

	var body detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("error decoding roboflow response: %w", err)
	}

	var best *entity.BallDetection
	for _, p := range body.Predictions {
		if p.Class != "" && p.Class != "ball" && p.Class != "basketball" {
			continue
		}
		if best == nil || p.Confidence > best.Confidence {
			best = &entity.BallDetection{
				// Roboflow reports box centers; convert to top-left.
				X:          p.X - p.Width/2,
				Y:          p.Y - p.Height/2,
				Width:      p.Width,
				Height:     p.Height,
				Confidence: p.Confidence,
			}
		}
	}

	return best, nil
}
