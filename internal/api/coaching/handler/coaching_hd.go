package coachingHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/coaching"
	contextPkg "ShotFormGolang/pkg/context"
	"ShotFormGolang/pkg/handlerUtil"
	jwtPkg "ShotFormGolang/pkg/jwt"
	"ShotFormGolang/pkg/log"
)

func (h *CoachingHandler) HandleGenerateCoaching(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid session")
	}

	var req coaching.CoachingRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	resp, err := h.coachingService.GenerateCoaching(c, user.ID, ctx.Params("analysisId"), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "generate_coaching")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":  requestID,
			"analysis_id": resp.AnalysisID,
			"persona":     resp.Persona,
			"generated":   resp.Generated,
		}).Info("Coaching feedback served")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *CoachingHandler) HandleListPersonas(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, h.coachingService.ListPersonas())
}
