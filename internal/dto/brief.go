package dto

import (
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/services"
)

// BriefDTO represents a generated brief in API responses, enriched with the
// derived asset and stock-photo URLs the front end renders.
type BriefDTO struct {
	ID                       string            `json:"id"`
	ProjectName              string            `json:"projectName"`
	CompanyName              string            `json:"companyName"`
	Industry                 string            `json:"industry"`
	AboutCompany             string            `json:"aboutCompany"`
	TargetAudience           string            `json:"targetAudience"`
	ProjectGoal              string            `json:"projectGoal"`
	ContentSummary           string            `json:"contentSummary"`
	RequiredDeliverables     []string          `json:"requiredDeliverables"`
	StylePreferences         string            `json:"stylePreferences"`
	SuggestedColors          []string          `json:"suggestedColors"`
	DeadlineHours            int               `json:"deadlineHours"`
	Copywriting              []string          `json:"copywriting"`
	ContactDetails           []string          `json:"contactDetails"`
	VisualReferences         []string          `json:"visualReferences"`
	ProvidedAssetDescription string            `json:"providedAssetDescription"`
	ClientType               models.ClientType `json:"clientType"`
	ClientTypeLabel          string            `json:"clientTypeLabel"`
	HasReferenceImage        bool              `json:"hasReferenceImage"`
	AssetURL                 string            `json:"assetUrl"`
	StockSearchURL           string            `json:"stockSearchUrl"`
	AssetWidth               int               `json:"assetWidth"`
	AssetHeight              int               `json:"assetHeight"`
}

// ToBriefDTO converts a Brief to its response shape. The category drives the
// asset frame; dashboard views that no longer know the category pass a
// square-framed default.
func ToBriefDTO(brief models.Brief, category models.DesignCategory) BriefDTO {
	frame := services.FrameFor(category, brief)
	return BriefDTO{
		ID:                       brief.ID,
		ProjectName:              brief.ProjectName,
		CompanyName:              brief.CompanyName,
		Industry:                 brief.Industry,
		AboutCompany:             brief.AboutCompany,
		TargetAudience:           brief.TargetAudience,
		ProjectGoal:              brief.ProjectGoal,
		ContentSummary:           brief.ContentSummary,
		RequiredDeliverables:     brief.RequiredDeliverables,
		StylePreferences:         brief.StylePreferences,
		SuggestedColors:          brief.SuggestedColors,
		DeadlineHours:            brief.DeadlineHours,
		Copywriting:              brief.Copywriting,
		ContactDetails:           brief.ContactDetails,
		VisualReferences:         brief.VisualReferences,
		ProvidedAssetDescription: brief.ProvidedAssetDescription,
		ClientType:               brief.ClientType,
		ClientTypeLabel:          brief.ClientType.Label(),
		HasReferenceImage:        brief.ReferenceImage != "",
		AssetURL:                 services.AssetURL(category, brief),
		StockSearchURL:           services.StockSearchURL(brief),
		AssetWidth:               frame.Width,
		AssetHeight:              frame.Height,
	}
}
