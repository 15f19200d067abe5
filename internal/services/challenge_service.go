package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/storage"
)

// WizardStep is a state of the brief creation wizard.
type WizardStep string

const (
	StepCategory    WizardStep = "category"
	StepIndustry    WizardStep = "industry"
	StepUploadStyle WizardStep = "upload-style"
	StepResult      WizardStep = "result"
)

// GenerationErrorMessage is the localized message surfaced when brief
// generation fails and the wizard reverts a step.
const GenerationErrorMessage = "حدث خطأ أثناء توليد البرييف. يرجى المحاولة مرة أخرى."

var (
	ErrInvalidCategory    = errors.New("unknown design category")
	ErrNoCategorySelected = errors.New("no category selected")
	ErrGenerationInFlight = errors.New("a generation request is already in flight")
	ErrNoBriefToAccept    = errors.New("no generated brief to accept")
	ErrBriefMismatch      = errors.New("edited brief does not match the current brief")
)

// wizard holds the per-browser wizard state. A mutex serializes the handlers
// of one session; the epoch counter discards generation responses that
// complete after the user has backed out or restarted.
type wizard struct {
	mu         sync.Mutex
	step       WizardStep
	category   models.DesignCategory
	industry   string
	difficulty models.Difficulty
	clientType models.ClientType
	remixImage string
	brief      *models.Brief
	errMsg     string
	inFlight   bool
	epoch      uint64
}

func newWizard() *wizard {
	return &wizard{
		step:       StepCategory,
		difficulty: models.DifficultyBeginner,
		clientType: models.ClientLocal,
	}
}

// WizardState is an immutable snapshot of a wizard, safe to hand to the
// presentation layer.
type WizardState struct {
	Step          WizardStep
	Category      models.DesignCategory
	Industry      string
	Difficulty    models.Difficulty
	ClientType    models.ClientType
	HasRemixImage bool
	Brief         *models.Brief
	ErrorMessage  string
	InFlight      bool
}

func (w *wizard) snapshot() WizardState {
	state := WizardState{
		Step:          w.step,
		Category:      w.category,
		Industry:      w.industry,
		Difficulty:    w.difficulty,
		ClientType:    w.clientType,
		HasRemixImage: w.remixImage != "",
		ErrorMessage:  w.errMsg,
		InFlight:      w.inFlight,
	}
	if w.brief != nil {
		briefCopy := *w.brief
		state.Brief = &briefCopy
	}
	return state
}

// ChallengeService drives the wizard state machine and the acceptance of
// briefs into tracked projects.
type ChallengeService struct {
	mu        sync.Mutex
	wizards   map[string]*wizard
	generator BriefGenerator
	catalog   *models.Catalog
	store     storage.Store
	now       func() time.Time
	logger    *zap.Logger
}

// NewChallengeService creates a ChallengeService. The catalog is injected so
// industry lists are configuration, not ambient package state.
func NewChallengeService(generator BriefGenerator, catalog *models.Catalog, store storage.Store, logger *zap.Logger) *ChallengeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChallengeService{
		wizards:   make(map[string]*wizard),
		generator: generator,
		catalog:   catalog,
		store:     store,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *ChallengeService) wizardFor(id string) *wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	if !ok {
		w = newWizard()
		s.wizards[id] = w
	}
	return w
}

// Catalog exposes the injected catalog lookup.
func (s *ChallengeService) Catalog() *models.Catalog {
	return s.catalog
}

// State returns the current wizard snapshot for a session.
func (s *ChallengeService) State(id string) WizardState {
	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

// SelectCategory starts a new wizard cycle. Remix categories move to the
// upload-style step, everything else to the industry step. Difficulty and
// client market are stamped here; a selection invalidates any generation
// still in flight.
func (s *ChallengeService) SelectCategory(id string, category models.DesignCategory, difficulty models.Difficulty, clientType models.ClientType) (WizardState, error) {
	if !category.Valid() {
		return s.State(id), ErrInvalidCategory
	}
	if difficulty != models.DifficultyProfessional {
		difficulty = models.DifficultyBeginner
	}
	if clientType != models.ClientForeign {
		clientType = models.ClientLocal
	}

	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.category = category
	w.difficulty = difficulty
	w.clientType = clientType
	w.industry = ""
	w.brief = nil
	w.errMsg = ""
	w.inFlight = false
	w.epoch++
	if category.IsRemix() {
		w.step = StepUploadStyle
	} else {
		w.step = StepIndustry
	}
	return w.snapshot(), nil
}

// AttachRemixImage stores the uploaded reference image for the remix path.
func (s *ChallengeService) AttachRemixImage(id, imageBase64 string) WizardState {
	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.remixImage = imageBase64
	return w.snapshot()
}

// DetachRemixImage removes the reference image.
func (s *ChallengeService) DetachRemixImage(id string) WizardState {
	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.remixImage = ""
	return w.snapshot()
}

// Generate runs a standard-mode generation for the picked industry (or the
// random sentinel) and advances to the result step on success. On failure the
// wizard reverts to the step the request started from with a localized error
// message set.
func (s *ChallengeService) Generate(ctx context.Context, id, industry string) (WizardState, error) {
	w := s.wizardFor(id)
	return s.generate(ctx, w, industry)
}

// StartRemix launches a remix-mode generation. Without an attached reference
// image this is a no-op, not an error: the action is simply unavailable.
func (s *ChallengeService) StartRemix(ctx context.Context, id string) (WizardState, error) {
	w := s.wizardFor(id)
	w.mu.Lock()
	if w.remixImage == "" {
		defer w.mu.Unlock()
		return w.snapshot(), nil
	}
	w.mu.Unlock()
	return s.generate(ctx, w, "")
}

// Regenerate repeats the last generation with the same parameters.
func (s *ChallengeService) Regenerate(ctx context.Context, id string) (WizardState, error) {
	w := s.wizardFor(id)
	return s.generate(ctx, w, "")
}

func (s *ChallengeService) generate(ctx context.Context, w *wizard, industry string) (WizardState, error) {
	w.mu.Lock()
	if w.category == "" {
		defer w.mu.Unlock()
		return w.snapshot(), ErrNoCategorySelected
	}
	if w.inFlight {
		defer w.mu.Unlock()
		return w.snapshot(), ErrGenerationInFlight
	}

	if industry != "" {
		w.industry = industry
	}
	req := BriefRequest{
		Category:       w.category,
		Difficulty:     w.difficulty,
		ClientType:     w.clientType,
		Industry:       w.industry,
		ReferenceImage: w.remixImage,
	}
	if !w.category.IsRemix() {
		req.ReferenceImage = ""
	}
	w.errMsg = ""
	w.inFlight = true
	w.epoch++
	epoch := w.epoch
	w.mu.Unlock()

	brief, err := s.generator.GenerateBrief(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.epoch != epoch {
		// The user backed out or restarted while the request was in flight;
		// the response is stale and must not be applied.
		s.logger.Debug("discarding stale generation response")
		return w.snapshot(), nil
	}
	w.inFlight = false
	if err != nil {
		s.logger.Warn("brief generation failed", zap.Error(err))
		w.errMsg = GenerationErrorMessage
		if w.category.IsRemix() {
			w.step = StepUploadStyle
		} else {
			w.step = StepIndustry
		}
		return w.snapshot(), err
	}

	w.brief = brief
	w.step = StepResult
	return w.snapshot(), nil
}

// Reset returns the wizard to the category step and clears the selected
// category, industry, remix image, brief and error. Any in-flight generation
// becomes stale.
func (s *ChallengeService) Reset(id string) WizardState {
	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepCategory
	w.category = ""
	w.industry = ""
	w.remixImage = ""
	w.brief = nil
	w.errMsg = ""
	w.inFlight = false
	w.epoch++
	return w.snapshot()
}

// Accept turns the current brief into an active Project owned by user. The
// caller may pass an edited copy of the brief; it must carry the current
// brief's id and only its text content is taken — market and reference image
// stay as generated. The new project is prepended to the user's list, the
// list is persisted as a whole, and the wizard resets.
func (s *ChallengeService) Accept(id string, user models.User, edited *models.Brief) (*models.Project, error) {
	w := s.wizardFor(id)
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.brief == nil || w.step != StepResult {
		return nil, ErrNoBriefToAccept
	}
	if w.inFlight {
		return nil, ErrGenerationInFlight
	}

	brief := *w.brief
	if edited != nil {
		if edited.ID != brief.ID {
			return nil, ErrBriefMismatch
		}
		clientType := brief.ClientType
		reference := brief.ReferenceImage
		brief = *edited
		brief.ClientType = clientType
		brief.ReferenceImage = reference
	}

	project := models.Project{
		ID:        uuid.NewString(),
		Brief:     brief,
		StartTime: s.now().UnixMilli(),
		Status:    models.ProjectActive,
	}

	projects := append([]models.Project{project}, s.store.ProjectsFor(user.Email)...)
	if err := s.store.SaveProjectsFor(user.Email, projects); err != nil {
		return nil, err
	}

	w.step = StepCategory
	w.category = ""
	w.industry = ""
	w.remixImage = ""
	w.brief = nil
	w.errMsg = ""
	w.epoch++

	s.logger.Info("challenge accepted",
		zap.String("project_id", project.ID),
		zap.String("brief_id", brief.ID),
		zap.String("user", user.Email))
	return &project, nil
}
