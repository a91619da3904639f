package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type ICoachAI interface {
	GenerateCoachingFeedback(ctx context.Context, persona string, summary string) (*CoachingFeedback, error)
}

// CoachingFeedback is the structured copy the model is asked to return.
type CoachingFeedback struct {
	Headline  string   `json:"headline"`
	Feedback  string   `json:"feedback"`
	Drills    []string `json:"drills"`
	Encourage string   `json:"encouragement"`
}

var personaPrompts = map[string]string{
	"fundamentals": "You are a no-nonsense fundamentals coach. Plain language, mechanics first, one correction at a time.",
	"motivational": "You are an upbeat motivational coach. Lead with what the player does well, frame every fix as a quick win.",
	"analytical":   "You are an analytics-minded shooting coach. Reference the measured angles and percentages directly.",
}

const defaultPersona = "fundamentals"

type coachAIService struct {
	client *openai.Client
	model  string
}

func NewCoachAI() ICoachAI {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4
	}

	return &coachAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateCoachingFeedback turns a metric summary into persona-voiced
// coaching copy. The summary is the plain-text rendering of one
// FormAnalysisResult.
func (c *coachAIService) GenerateCoachingFeedback(ctx context.Context, persona string, summary string) (*CoachingFeedback, error) {
	personaPrompt, ok := personaPrompts[persona]
	if !ok {
		personaPrompt = personaPrompts[defaultPersona]
	}

	systemPrompt := personaPrompt + `

You receive a basketball shooting-form analysis: per-metric measurements with optimal ranges and a ranked issue list.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{
  "headline": "one-line verdict on the shot",
  "feedback": "2-4 sentences of coaching on the top-ranked issues",
  "drills": ["drill 1", "drill 2"],
  "encouragement": "one closing sentence"
}`

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: summary,
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.6,
			MaxTokens:   400,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)

	if err != nil {
		return nil, fmt.Errorf("coaching model error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from coaching model")
	}

	var feedback CoachingFeedback
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &feedback); err != nil {
		return nil, fmt.Errorf("failed to parse coaching feedback: %w", err)
	}

	return &feedback, nil
}

// Personas lists the selectable coaching voices.
func Personas() []string {
	return []string{"fundamentals", "motivational", "analytical"}
}
