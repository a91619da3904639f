package coachingService

import (
	"fmt"
	"strings"

	"golang.org/x/net/context"

	"ShotFormGolang/internal/api/analysis"
	"ShotFormGolang/internal/api/coaching"
	"ShotFormGolang/internal/entity"
	"ShotFormGolang/pkg/biomech"
	contextPkg "ShotFormGolang/pkg/context"
	"ShotFormGolang/pkg/log"
	openaiPkg "ShotFormGolang/pkg/openai"
)

func (s *coachingService) GenerateCoaching(ctx context.Context, userID, analysisID string, req coaching.CoachingRequest) (coaching.CoachingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	persona := req.Persona
	if persona == "" {
		persona = "fundamentals"
	}
	if !isKnownPersona(persona) {
		return coaching.CoachingResponse{}, coaching.ErrUnknownPersona
	}

	repo, err := s.analysisRepository.NewClient(false)
	if err != nil {
		return coaching.CoachingResponse{}, err
	}

	a, err := repo.Analyses.GetByID(ctx, analysisID)
	if err != nil {
		return coaching.CoachingResponse{}, err
	}

	if a.UserID != userID {
		return coaching.CoachingResponse{}, analysis.ErrAnalysisNotOwned
	}

	summary := renderSummary(a.Result)

	feedback, err := s.coachAI.GenerateCoachingFeedback(ctx, persona, summary)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id":  requestID,
			"analysis_id": analysisID,
			"persona":     persona,
			"error":       err.Error(),
		}).Warn("Coaching model failed, serving canned recommendations")

		return coaching.CoachingResponse{
			AnalysisID: analysisID,
			Persona:    persona,
			Generated:  false,
			Feedback:   cannedFeedback(a.Result),
		}, nil
	}

	s.log.WithFields(log.Fields{
		"request_id":  requestID,
		"analysis_id": analysisID,
		"persona":     persona,
	}).Info("Coaching feedback generated")

	return coaching.CoachingResponse{
		AnalysisID: analysisID,
		Persona:    persona,
		Generated:  true,
		Feedback:   *feedback,
	}, nil
}

func (s *coachingService) ListPersonas() coaching.PersonaListResponse {
	return coaching.PersonaListResponse{Personas: openaiPkg.Personas()}
}

func isKnownPersona(persona string) bool {
	for _, p := range openaiPkg.Personas() {
		if p == persona {
			return true
		}
	}
	return false
}

// renderSummary flattens one scoring result into the plain-text form the
// coaching model is prompted with.
func renderSummary(result entity.FormAnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall score %d/100 (%s), %d metrics measured.\n",
		result.OverallScore, result.Category, result.TotalMetrics)

	for _, m := range result.Metrics {
		fmt.Fprintf(&b, "- %s: %.1f %s (optimal %.0f-%.0f), status %s\n",
			m.Name, m.Value, m.Unit, m.OptimalMin, m.OptimalMax, m.Status)
	}

	for _, issue := range result.PriorityIssues {
		fmt.Fprintf(&b, "Priority %d (%s): %s — %s\n",
			issue.Rank, issue.Severity, issue.Title, issue.Description)
	}

	return b.String()
}

// cannedFeedback builds a deterministic answer from the recommendation
// table so coaching never fails outright.
func cannedFeedback(result entity.FormAnalysisResult) openaiPkg.CoachingFeedback {
	drills := make([]string, 0, len(result.PriorityIssues))
	for _, issue := range result.PriorityIssues {
		rec := issue.Recommendation
		if rec == "" {
			rec = biomech.RecommendationFor(issue.Title)
		}
		drills = append(drills, fmt.Sprintf("%s: %s", issue.Title, rec))
	}

	headline := fmt.Sprintf("Your form scored %d/100", result.OverallScore)
	feedback := "Focus on the priority issues below, one at a time, starting from the top."
	if len(drills) == 0 {
		feedback = "No issues detected in this shot. Keep repeating the same motion to groove it."
	}

	return openaiPkg.CoachingFeedback{
		Headline:  headline,
		Feedback:  feedback,
		Drills:    drills,
		Encourage: "Every rep counts. Keep shooting.",
	}
}
