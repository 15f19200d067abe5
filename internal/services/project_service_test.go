package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/storage"
)

type stubEvaluator struct {
	feedback models.Feedback
	calls    int
}

func (s *stubEvaluator) Evaluate(_ context.Context, _ models.Brief, _ string) models.Feedback {
	s.calls++
	return s.feedback
}

func seedProject(t *testing.T, store storage.Store, email string, project models.Project) {
	t.Helper()
	projects := append([]models.Project{project}, store.ProjectsFor(email)...)
	require.NoError(t, store.SaveProjectsFor(email, projects))
}

func activeProject(id string, startedAt time.Time, deadlineHours int) models.Project {
	return models.Project{
		ID:        id,
		Brief:     models.Brief{ID: "b-" + id, ProjectName: "Pixel Arena", DeadlineHours: deadlineHours},
		StartTime: startedAt.UnixMilli(),
		Status:    models.ProjectActive,
	}
}

func TestList_DerivesExpiry(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	seedProject(t, store, "a@x.com", activeProject("p-fresh", now.Add(-1*time.Hour), 48))
	seedProject(t, store, "a@x.com", activeProject("p-stale", now.Add(-72*time.Hour), 48))

	svc := NewProjectService(store, &stubEvaluator{}, nil)
	svc.now = func() time.Time { return now }

	projects := svc.List("a@x.com")
	require.Len(t, projects, 2)

	byID := map[string]models.Project{}
	for _, p := range projects {
		byID[p.ID] = p
	}
	require.Equal(t, models.ProjectExpired, byID["p-stale"].Status)
	require.Equal(t, models.ProjectActive, byID["p-fresh"].Status)

	// Expiry is derived, never written back.
	stored := store.ProjectsFor("a@x.com")
	for _, p := range stored {
		require.Equal(t, models.ProjectActive, p.Status)
	}
}

func TestGet(t *testing.T) {
	store := newTestStore(t)
	seedProject(t, store, "a@x.com", activeProject("p-1", time.Now(), 48))

	svc := NewProjectService(store, &stubEvaluator{}, nil)

	project, err := svc.Get("a@x.com", "p-1")
	require.NoError(t, err)
	require.Equal(t, "p-1", project.ID)

	_, err = svc.Get("a@x.com", "p-missing")
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.Get("b@x.com", "p-1")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSubmit_CompletesProject(t *testing.T) {
	store := newTestStore(t)
	seedProject(t, store, "a@x.com", activeProject("p-1", time.Now(), 48))

	eval := &stubEvaluator{feedback: models.Feedback{
		Score:     7,
		Strengths: []string{"strong hierarchy"},
		Advice:    "Give the headline more room.",
		IsSuccess: true,
	}}
	svc := NewProjectService(store, eval, nil)

	project, err := svc.Submit(context.Background(), "a@x.com", "p-1", "aW1hZ2U=")
	require.NoError(t, err)
	require.Equal(t, models.ProjectCompleted, project.Status)
	require.Equal(t, "aW1hZ2U=", project.UserImage)
	require.NotNil(t, project.Feedback)
	require.Equal(t, 7, project.Feedback.Score)
	require.Equal(t, 1, eval.calls)

	stored := store.ProjectsFor("a@x.com")
	require.Len(t, stored, 1)
	require.Equal(t, models.ProjectCompleted, stored[0].Status)
	require.NotNil(t, stored[0].Feedback)
}

func TestSubmit_ExpiredProjectRejected(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedProject(t, store, "a@x.com", activeProject("p-1", now.Add(-72*time.Hour), 48))

	eval := &stubEvaluator{}
	svc := NewProjectService(store, eval, nil)
	svc.now = func() time.Time { return now }

	_, err := svc.Submit(context.Background(), "a@x.com", "p-1", "aW1hZ2U=")
	require.ErrorIs(t, err, ErrProjectNotActive)
	require.Zero(t, eval.calls)
}

func TestSubmit_CompletedProjectRejected(t *testing.T) {
	store := newTestStore(t)
	project := activeProject("p-1", time.Now(), 48)
	project.Status = models.ProjectCompleted
	seedProject(t, store, "a@x.com", project)

	svc := NewProjectService(store, &stubEvaluator{}, nil)

	_, err := svc.Submit(context.Background(), "a@x.com", "p-1", "aW1hZ2U=")
	require.ErrorIs(t, err, ErrProjectNotActive)
}

func TestSubmit_UnknownProject(t *testing.T) {
	store := newTestStore(t)
	svc := NewProjectService(store, &stubEvaluator{}, nil)

	_, err := svc.Submit(context.Background(), "a@x.com", "p-1", "aW1hZ2U=")
	require.ErrorIs(t, err, ErrProjectNotFound)
}
