package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"

	"github.com/graphico/brief-api/internal/models"
)

// SubmissionEvaluator grades a submitted design against its brief.
// Evaluation never fails outward: implementations substitute FallbackFeedback
// for any error, so a broken evaluation service can never block a user from
// completing a challenge.
type SubmissionEvaluator interface {
	Evaluate(ctx context.Context, brief models.Brief, imageBase64 string) models.Feedback
}

// FallbackFeedback is the canned optimistic result returned when the
// evaluation capability is unavailable or its response is unusable.
func FallbackFeedback() models.Feedback {
	return models.Feedback{
		Score:      8,
		Strengths:  []string{"Good effort", "Nice colors"},
		Weaknesses: []string{"AI analysis unavailable right now"},
		Advice:     "Keep practicing!",
		IsSuccess:  true,
	}
}

// AIEvaluator evaluates submissions through the OpenAI chat completion API.
type AIEvaluator struct {
	client chatCompleter
	model  string
	logger *zap.Logger
}

// NewEvaluator creates an evaluator bound to the given API key and model.
func NewEvaluator(apiKey, model string, logger *zap.Logger) *AIEvaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIEvaluator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

var feedbackSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"score":      {Type: jsonschema.Integer, Description: "Score 1-10"},
		"strengths":  {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}, Description: "Strengths"},
		"weaknesses": {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}, Description: "Weaknesses"},
		"advice":     {Type: jsonschema.String, Description: "Advice"},
		"isSuccess":  {Type: jsonschema.Boolean, Description: "Pass/Fail"},
	},
	Required:             []string{"score", "strengths", "weaknesses", "advice", "isSuccess"},
	AdditionalProperties: false,
}

type feedbackPayload struct {
	Score      *int      `json:"score"`
	Strengths  *[]string `json:"strengths"`
	Weaknesses *[]string `json:"weaknesses"`
	Advice     *string   `json:"advice"`
	IsSuccess  *bool     `json:"isSuccess"`
}

func (p *feedbackPayload) complete() bool {
	return p.Score != nil && p.Strengths != nil && p.Weaknesses != nil && p.Advice != nil && p.IsSuccess != nil
}

// Evaluate grades the submitted image against the brief's project name, goal
// and content scenario. Any failure is absorbed and replaced by the fixed
// fallback feedback.
func (e *AIEvaluator) Evaluate(ctx context.Context, brief models.Brief, imageBase64 string) models.Feedback {
	prompt := fmt.Sprintf(`Act as a Senior Design Mentor. Evaluate this submission based on the brief:
- Project: %s
- Goal: %s
- Context: %s

Analyze the image. Be constructive, strict but encouraging.`,
		brief.ProjectName, brief.ProjectGoal, brief.ContentSummary)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    "data:image/jpeg;base64," + imageBase64,
							Detail: openai.ImageURLDetailAuto,
						},
					},
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "design_feedback",
				Schema: &feedbackSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		e.logger.Warn("evaluation call failed, using fallback", zap.Error(err))
		return FallbackFeedback()
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		e.logger.Warn("evaluation returned no content, using fallback")
		return FallbackFeedback()
	}

	var payload feedbackPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil || !payload.complete() {
		e.logger.Warn("evaluation response unusable, using fallback", zap.Error(err))
		return FallbackFeedback()
	}

	return models.Feedback{
		Score:      *payload.Score,
		Strengths:  *payload.Strengths,
		Weaknesses: *payload.Weaknesses,
		Advice:     *payload.Advice,
		IsSuccess:  *payload.IsSuccess,
	}
}
