package analysisHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	analysisService "ShotFormGolang/internal/api/analysis/service"
	"ShotFormGolang/internal/middleware"
	"ShotFormGolang/pkg/utils"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.AnalysisService
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as analysisService.AnalysisService,
	utils utils.IUtils,
) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		analysisService: as,
		utils:           utils,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	analyses := srv.Group("/analyses")
	analyses.Use("/live", wsMiddleware)
	analyses.Get("/live", websocket.New(h.handleLiveWebSocket))

	analyses.Post("", h.middleware.NewTokenMiddleware, h.HandleAnalyze)
	analyses.Post("/keypoints", h.middleware.NewTokenMiddleware, h.HandleAnalyzeKeypoints)
	analyses.Get("", h.middleware.NewTokenMiddleware, h.HandleListAnalyses)
	analyses.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetAnalysis)
	analyses.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteAnalysis)
	analyses.Post("/:id/email", h.middleware.NewTokenMiddleware, h.HandleEmailReport)
}
