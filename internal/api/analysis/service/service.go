package analysisService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/analysis"
	analysisRepository "ShotFormGolang/internal/api/analysis/repository"
	"ShotFormGolang/internal/entity"
	"ShotFormGolang/pkg/biomech"
	"ShotFormGolang/pkg/gemini"
	"ShotFormGolang/pkg/pose"
	"ShotFormGolang/pkg/roboflow"
	"ShotFormGolang/pkg/s3"
	"ShotFormGolang/pkg/smtp"
	"ShotFormGolang/pkg/utils"
)

type AnalysisService interface {
	AnalyzeUpload(ctx context.Context, userID string, file *multipart.FileHeader) (analysis.AnalysisResponse, error)
	AnalyzeImage(ctx context.Context, userID string, req analysis.AnalyzeImageRequest) (analysis.AnalysisResponse, error)
	AnalyzeKeypoints(ctx context.Context, userID string, req analysis.AnalyzeKeypointsRequest) (analysis.AnalysisResponse, error)
	GetAnalyses(ctx context.Context, userID string, page, limit int) (analysis.AnalysisListResponse, error)
	GetAnalysis(ctx context.Context, userID, id string) (analysis.AnalysisResponse, error)
	DeleteAnalysis(ctx context.Context, userID, id string) error
	EmailReport(ctx context.Context, userID, userEmail, id string) error
	ProcessLiveFrame(frame []byte) (*entity.FormAnalysisResult, error)
}

type analysisService struct {
	log                *logrus.Logger
	analysisRepository analysisRepository.Repository
	analyzer           *biomech.Analyzer
	poseClient         pose.IPoseClient
	roboflowClient     roboflow.IRoboflow
	geminiClient       gemini.IGemini
	s3Client           s3.ItfS3
	smtpMailer         smtp.ItfSmtp
	utils              utils.IUtils
}

func New(
	log *logrus.Logger,
	repo analysisRepository.Repository,
	poseClient pose.IPoseClient,
	roboflowClient roboflow.IRoboflow,
	geminiClient gemini.IGemini,
	s3Client s3.ItfS3,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) AnalysisService {
	return &analysisService{
		log:                log,
		analysisRepository: repo,
		analyzer:           biomech.NewAnalyzer(),
		poseClient:         poseClient,
		roboflowClient:     roboflowClient,
		geminiClient:       geminiClient,
		s3Client:           s3Client,
		smtpMailer:         smtpMailer,
		utils:              utils,
	}
}
