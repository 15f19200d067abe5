package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/storage"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNotActive = errors.New("project is not active")
)

// ProjectService reads and advances a user's tracked challenges.
type ProjectService struct {
	store     storage.Store
	evaluator SubmissionEvaluator
	now       func() time.Time
	logger    *zap.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store storage.Store, evaluator SubmissionEvaluator, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		store:     store,
		evaluator: evaluator,
		now:       time.Now,
		logger:    logger,
	}
}

// List returns the user's projects with deadline expiry applied at read
// time. Nothing is written back: expiry stays a derived property.
func (s *ProjectService) List(email string) []models.Project {
	projects := s.store.ProjectsFor(email)
	now := s.now()
	for i := range projects {
		projects[i].Status = projects[i].EffectiveStatus(now)
	}
	return projects
}

// Get returns a single project by id.
func (s *ProjectService) Get(email, projectID string) (*models.Project, error) {
	for _, p := range s.List(email) {
		if p.ID == projectID {
			return &p, nil
		}
	}
	return nil, ErrProjectNotFound
}

// Submit evaluates the submitted image against the project's brief, attaches
// the feedback and the image, and completes the project. Only active
// projects accept a submission; completed and expired projects never
// transition again. The user's whole list is re-persisted.
func (s *ProjectService) Submit(ctx context.Context, email, projectID, imageBase64 string) (*models.Project, error) {
	projects := s.store.ProjectsFor(email)
	now := s.now()
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		if projects[i].EffectiveStatus(now) != models.ProjectActive {
			return nil, ErrProjectNotActive
		}

		feedback := s.evaluator.Evaluate(ctx, projects[i].Brief, imageBase64)
		projects[i].Feedback = &feedback
		projects[i].UserImage = imageBase64
		projects[i].Status = models.ProjectCompleted

		if err := s.store.SaveProjectsFor(email, projects); err != nil {
			return nil, err
		}
		s.logger.Info("challenge completed",
			zap.String("project_id", projectID),
			zap.String("user", email),
			zap.Int("score", feedback.Score))
		result := projects[i]
		return &result, nil
	}
	return nil, ErrProjectNotFound
}
