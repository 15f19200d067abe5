package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/models"
)

// ErrGeneration wraps any failure of the brief generation capability: API
// errors, empty responses, and payloads that do not satisfy the brief schema.
var ErrGeneration = errors.New("brief generation failed")

// BriefRequest carries everything the generator needs for one brief.
type BriefRequest struct {
	Category   models.DesignCategory
	Difficulty models.Difficulty
	ClientType models.ClientType
	// Industry is the chosen niche. Empty or the random sentinel lets the
	// generator pick one.
	Industry string
	// ReferenceImage is the base64 payload attached in style-remix mode.
	ReferenceImage string
}

// BriefGenerator produces a fully populated Brief for a request.
type BriefGenerator interface {
	GenerateBrief(ctx context.Context, req BriefRequest) (*models.Brief, error)
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIGenerator generates design briefs through the OpenAI chat completion API
// with a strict JSON schema response format.
type AIGenerator struct {
	client chatCompleter
	model  string
}

// NewBriefGenerator creates a generator bound to the given API key and model.
func NewBriefGenerator(apiKey, model string) *AIGenerator {
	return &AIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// briefSchema is the structured-output contract the generator is bound by.
// It covers every Brief field except id, clientType and referenceImage,
// which are stamped client-side after parsing.
var briefSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"projectName":    {Type: jsonschema.String, Description: "Project Name"},
		"companyName":    {Type: jsonschema.String, Description: "Company/Channel Name"},
		"industry":       {Type: jsonschema.String, Description: "Specific Industry"},
		"aboutCompany":   {Type: jsonschema.String, Description: "About the company"},
		"targetAudience": {Type: jsonschema.String, Description: "Target Audience description"},
		"projectGoal":    {Type: jsonschema.String, Description: "Main goal of the design"},
		"contentSummary": {Type: jsonschema.String, Description: "Detailed story/scenario of the content."},
		"requiredDeliverables": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "List of deliverables",
		},
		"stylePreferences": {Type: jsonschema.String, Description: "Visual style description based on analysis"},
		"suggestedColors": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "Color palette hex codes",
		},
		"deadlineHours": {Type: jsonschema.Integer, Description: "Deadline in hours"},
		"copywriting": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "Headlines or copy text to be included",
		},
		"contactDetails": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "Mock contact info",
		},
		"visualReferences": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "Keywords for visual research",
		},
		"providedAssetDescription": {
			Type:        jsonschema.String,
			Description: "Detailed English description for a high-quality stock photo to be used. If YouTube/Education/Product, specify 'isolated on white background'.",
		},
	},
	Required: []string{
		"projectName",
		"companyName",
		"industry",
		"aboutCompany",
		"targetAudience",
		"projectGoal",
		"contentSummary",
		"requiredDeliverables",
		"stylePreferences",
		"suggestedColors",
		"deadlineHours",
		"copywriting",
		"contactDetails",
		"visualReferences",
		"providedAssetDescription",
	},
	AdditionalProperties: false,
}

// briefPayload mirrors the schema with pointer fields so that every required
// field can be presence-checked instead of trusting the shape implicitly.
type briefPayload struct {
	ProjectName              *string   `json:"projectName"`
	CompanyName              *string   `json:"companyName"`
	Industry                 *string   `json:"industry"`
	AboutCompany             *string   `json:"aboutCompany"`
	TargetAudience           *string   `json:"targetAudience"`
	ProjectGoal              *string   `json:"projectGoal"`
	ContentSummary           *string   `json:"contentSummary"`
	RequiredDeliverables     *[]string `json:"requiredDeliverables"`
	StylePreferences         *string   `json:"stylePreferences"`
	SuggestedColors          *[]string `json:"suggestedColors"`
	DeadlineHours            *int      `json:"deadlineHours"`
	Copywriting              *[]string `json:"copywriting"`
	ContactDetails           *[]string `json:"contactDetails"`
	VisualReferences         *[]string `json:"visualReferences"`
	ProvidedAssetDescription *string   `json:"providedAssetDescription"`
}

func (p *briefPayload) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: response is missing required field %q", ErrGeneration, name)
	}
	switch {
	case p.ProjectName == nil:
		return missing("projectName")
	case p.CompanyName == nil:
		return missing("companyName")
	case p.Industry == nil:
		return missing("industry")
	case p.AboutCompany == nil:
		return missing("aboutCompany")
	case p.TargetAudience == nil:
		return missing("targetAudience")
	case p.ProjectGoal == nil:
		return missing("projectGoal")
	case p.ContentSummary == nil:
		return missing("contentSummary")
	case p.RequiredDeliverables == nil:
		return missing("requiredDeliverables")
	case p.StylePreferences == nil:
		return missing("stylePreferences")
	case p.SuggestedColors == nil:
		return missing("suggestedColors")
	case p.DeadlineHours == nil:
		return missing("deadlineHours")
	case p.Copywriting == nil:
		return missing("copywriting")
	case p.ContactDetails == nil:
		return missing("contactDetails")
	case p.VisualReferences == nil:
		return missing("visualReferences")
	case p.ProvidedAssetDescription == nil:
		return missing("providedAssetDescription")
	}
	return nil
}

// GenerateBrief builds the market/category/mode specific request, invokes the
// generation capability and normalizes the response into a Brief. The brief
// id, client market and reference image are stamped after parsing.
func (g *AIGenerator) GenerateBrief(ctx context.Context, req BriefRequest) (*models.Brief, error) {
	prompt := buildBriefPrompt(req)

	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if req.ReferenceImage != "" {
		message.MultiContent = []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:image/jpeg;base64," + req.ReferenceImage,
					Detail: openai.ImageURLDetailAuto,
				},
			},
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
		}
	} else {
		message.Content = prompt
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: []openai.ChatCompletionMessage{message},
		// Near-maximum creativity: repeated calls with identical inputs are
		// expected to yield different briefs.
		Temperature: 0.95,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "design_brief",
				Schema: &briefSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: no data received", ErrGeneration)
	}

	var payload briefPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", ErrGeneration, err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	brief := &models.Brief{
		ID:                       uuid.NewString(),
		ProjectName:              *payload.ProjectName,
		CompanyName:              *payload.CompanyName,
		Industry:                 *payload.Industry,
		AboutCompany:             *payload.AboutCompany,
		TargetAudience:           *payload.TargetAudience,
		ProjectGoal:              *payload.ProjectGoal,
		ContentSummary:           *payload.ContentSummary,
		RequiredDeliverables:     *payload.RequiredDeliverables,
		StylePreferences:         *payload.StylePreferences,
		SuggestedColors:          *payload.SuggestedColors,
		DeadlineHours:            *payload.DeadlineHours,
		Copywriting:              *payload.Copywriting,
		ContactDetails:           *payload.ContactDetails,
		VisualReferences:         *payload.VisualReferences,
		ProvidedAssetDescription: *payload.ProvidedAssetDescription,
		ClientType:               req.ClientType,
		ReferenceImage:           req.ReferenceImage,
	}
	return brief, nil
}

// buildBriefPrompt reproduces the prompt contract of the original app:
// a language directive selected by market, a style hint for a couple of
// categories, and a standard or remix main body.
func buildBriefPrompt(req BriefRequest) string {
	isForeign := req.ClientType == models.ClientForeign

	var categoryContext string
	switch req.Category {
	case models.CategoryFootball:
		categoryContext = "Focus on Football/Soccer aesthetics, high energy, dynamic player poses, grit, textures, and bold typography."
	case models.CategoryCollage:
		categoryContext = "Focus on Collage Art aesthetics. Mixed media, torn paper edges, vintage elements mixed with modern, surrealism, visual metaphors."
	}

	languageInstruction := "CRITICAL: OUTPUT EVERYTHING IN ARABIC (except hex codes and providedAssetDescription). The client is Arab. Use culturally relevant terms."
	if isForeign {
		languageInstruction = "CRITICAL: OUTPUT EVERYTHING IN ENGLISH. The client is International (US/UK/Europe). Use Western design trends, English copy, and English formatting."
	}

	if req.Category.IsRemix() && req.ReferenceImage != "" {
		market := "Arab"
		if isForeign {
			market = "International"
		}
		return fmt.Sprintf(`Act as a Senior Art Director.
TASK: Analyze the visual style, composition, typography, and vibe of the attached image.
THEN: Create a design brief for a COMPLETELY DIFFERENT product/industry but using this EXACT style (Style Remix).

Example: If image is a neon cyberpunk burger ad, create a brief for a Sneaker Brand using that same neon cyberpunk style.

Parameters:
- Difficulty: %s
- Client Market: %s

%s

Requirements:
1. 'stylePreferences': Describe the style of the uploaded image in detail so the designer can replicate it.
2. 'projectGoal': Create a campaign that matches this visual identity.
3. 'copywriting': Write catchy headlines that fit this visual mood.`,
			req.Difficulty.Label(), market, languageInstruction)
	}

	market := "Middle East (Arab)"
	if isForeign {
		market = "International (Global)"
	}
	industry := strings.TrimSpace(req.Industry)
	if industry == "" || industry == constants.RandomIndustry {
		industry = "Random Creative Niche"
	}

	return fmt.Sprintf(`Act as a Senior Art Director. Create a highly detailed design brief.

Parameters:
- Category: %s
- Difficulty: %s
- Client Market: %s
- Specific Industry/Niche: %s

%s
%s

Requirements for fields:
1. 'contentSummary': Create a specific scenario or story. If YouTube, describe the video plot. If Football, describe the match stakes.
2. 'providedAssetDescription': MUST be in English.
   - If Category is YouTube, Education, or Product: End with "isolated on white background, studio lighting, 8k resolution".
   - If Football: "Dynamic football player action shot, stadium lights, professional sports photography".
   - If Collage: "Vintage paper texture, old statues, flowers, halftone pattern".
3. 'copywriting': Provide actual text to be placed on the design.

Make it professional and inspiring.`,
		req.Category.Label(), req.Difficulty.Label(), market, industry, languageInstruction, categoryContext)
}
