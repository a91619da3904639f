package coaching

import openaiPkg "ShotFormGolang/pkg/openai"

type CoachingRequest struct {
	Persona string `json:"persona" validate:"omitempty,max=32"`
}

type CoachingResponse struct {
	AnalysisID string                     `json:"analysis_id"`
	Persona    string                     `json:"persona"`
	Generated  bool                       `json:"generated"`
	Feedback   openaiPkg.CoachingFeedback `json:"feedback"`
}

type PersonaListResponse struct {
	Personas []string `json:"personas"`
}
