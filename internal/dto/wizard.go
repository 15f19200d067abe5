package dto

import (
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/services"
)

// WizardDTO represents the wizard state in API responses
type WizardDTO struct {
	Step          services.WizardStep   `json:"step"`
	Category      models.DesignCategory `json:"category,omitempty"`
	Industry      string                `json:"industry,omitempty"`
	Difficulty    models.Difficulty     `json:"difficulty"`
	ClientType    models.ClientType     `json:"clientType"`
	HasRemixImage bool                  `json:"hasRemixImage"`
	Brief         *BriefDTO             `json:"brief,omitempty"`
	Error         string                `json:"error,omitempty"`
	InFlight      bool                  `json:"inFlight"`
}

// ToWizardDTO converts a wizard snapshot to its response shape.
func ToWizardDTO(state services.WizardState) WizardDTO {
	dto := WizardDTO{
		Step:          state.Step,
		Category:      state.Category,
		Industry:      state.Industry,
		Difficulty:    state.Difficulty,
		ClientType:    state.ClientType,
		HasRemixImage: state.HasRemixImage,
		Error:         state.ErrorMessage,
		InFlight:      state.InFlight,
	}
	if state.Brief != nil {
		brief := ToBriefDTO(*state.Brief, state.Category)
		dto.Brief = &brief
	}
	return dto
}

// CategoryDTO is one selectable design category with its industry choices.
type CategoryDTO struct {
	ID         models.DesignCategory `json:"id"`
	Label      string                `json:"label"`
	IsRemix    bool                  `json:"isRemix"`
	Industries []string              `json:"industries"`
}

// CatalogDTO is the full set of wizard choices.
type CatalogDTO struct {
	Categories   []CategoryDTO `json:"categories"`
	Difficulties []OptionDTO   `json:"difficulties"`
	ClientTypes  []OptionDTO   `json:"clientTypes"`
}

// OptionDTO is a value/label pair for a toggle.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ToCatalogDTO converts the injected catalog to its response shape.
func ToCatalogDTO(catalog *models.Catalog) CatalogDTO {
	categories := make([]CategoryDTO, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		item := CategoryDTO{
			ID:      c,
			Label:   c.Label(),
			IsRemix: c.IsRemix(),
		}
		if !c.IsRemix() {
			item.Industries = catalog.IndustriesFor(c)
		}
		categories = append(categories, item)
	}
	return CatalogDTO{
		Categories: categories,
		Difficulties: []OptionDTO{
			{Value: string(models.DifficultyBeginner), Label: models.DifficultyBeginner.Label()},
			{Value: string(models.DifficultyProfessional), Label: models.DifficultyProfessional.Label()},
		},
		ClientTypes: []OptionDTO{
			{Value: string(models.ClientLocal), Label: models.ClientLocal.Label()},
			{Value: string(models.ClientForeign), Label: models.ClientForeign.Label()},
		},
	}
}
