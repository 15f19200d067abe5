package dto

import (
	"time"

	"github.com/graphico/brief-api/internal/models"
)

// FeedbackDTO represents an evaluation result in API responses
type FeedbackDTO struct {
	Score      int      `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Advice     string   `json:"advice"`
	IsSuccess  bool     `json:"isSuccess"`
}

// ProjectDTO represents a tracked challenge in API responses
type ProjectDTO struct {
	ID           string               `json:"id"`
	Brief        BriefDTO             `json:"brief"`
	StartTime    int64                `json:"startTime"`
	Deadline     time.Time            `json:"deadline"`
	Status       models.ProjectStatus `json:"status"`
	Feedback     *FeedbackDTO         `json:"feedback,omitempty"`
	HasUserImage bool                 `json:"hasUserImage"`
}

// ToFeedbackDTO converts a Feedback model to FeedbackDTO
func ToFeedbackDTO(f models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		Score:      f.Score,
		Strengths:  f.Strengths,
		Weaknesses: f.Weaknesses,
		Advice:     f.Advice,
		IsSuccess:  f.IsSuccess,
	}
}

// ToProjectDTO converts a Project to its response shape. The original client
// stopped tracking the wizard category once a brief was accepted, so
// dashboard briefs are framed with the square default.
func ToProjectDTO(p models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:           p.ID,
		Brief:        ToBriefDTO(p.Brief, models.CategoryUIUX),
		StartTime:    p.StartTime,
		Deadline:     p.Deadline(),
		Status:       p.Status,
		HasUserImage: p.UserImage != "",
	}
	if p.Feedback != nil {
		feedback := ToFeedbackDTO(*p.Feedback)
		dto.Feedback = &feedback
	}
	return dto
}

// ToProjectListDTO converts a slice of projects.
func ToProjectListDTO(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		items[i] = ToProjectDTO(p)
	}
	return items
}
