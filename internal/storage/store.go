package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/graphico/brief-api/internal/models"
)

// Storage key namespaces. These mirror the browser-era local store layout:
// one global user registry, one global session slot, and one project list
// per user email.
const (
	KeyUsers          = "graphico_users_db"
	KeySession        = "graphico_session"
	KeyProjectsPrefix = "graphico_projects_"
)

// Entry is a single serialized value in the key-value store.
type Entry struct {
	Key       string    `gorm:"primarykey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"type:text" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "entries"
}

// Store is the persistence gateway. Reads fail soft: missing or corrupt data
// comes back as the empty value, never as an error surfaced to callers.
// Writes are immediate full overwrites of the addressed namespace.
type Store interface {
	ListRegisteredUsers() []models.User
	RegisterUser(u models.User) models.User
	FindUserByEmail(email string) (*models.User, bool)

	SaveSession(u models.User) error
	GetSession() (*models.User, bool)
	ClearSession() error

	ProjectsFor(email string) []models.Project
	SaveProjectsFor(email string, projects []models.Project) error
}

// GormStore is a Store backed by a single gorm key-value table.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a Store on top of db.
func NewStore(db *gorm.DB, logger *zap.Logger) *GormStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormStore{db: db, logger: logger}
}

// ProjectsKey returns the storage key holding a user's project list.
func ProjectsKey(email string) string {
	return KeyProjectsPrefix + email
}

func (s *GormStore) read(key string, out any) bool {
	var entry Entry
	if err := s.db.Where(Entry{Key: key}).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("store read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		// Corrupt data recovers locally to the empty value.
		s.logger.Warn("store entry corrupt, ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *GormStore) write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	entry := Entry{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) delete(key string) error {
	if err := s.db.Delete(&Entry{Key: key}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// ListRegisteredUsers returns every user in the registry, or an empty slice
// when the registry is missing or unreadable.
func (s *GormStore) ListRegisteredUsers() []models.User {
	var users []models.User
	if !s.read(KeyUsers, &users) {
		return []models.User{}
	}
	return users
}

// RegisterUser appends u to the registry. Registration is idempotent by
// email: if a record already exists it is returned unchanged and nothing is
// written — the first registration wins.
func (s *GormStore) RegisterUser(u models.User) models.User {
	users := s.ListRegisteredUsers()
	for _, existing := range users {
		if existing.Email == u.Email {
			return existing
		}
	}
	users = append(users, u)
	if err := s.write(KeyUsers, users); err != nil {
		s.logger.Error("failed to persist user registry", zap.Error(err))
	}
	return u
}

// FindUserByEmail looks a user up in the registry.
func (s *GormStore) FindUserByEmail(email string) (*models.User, bool) {
	for _, u := range s.ListRegisteredUsers() {
		if u.Email == email {
			return &u, true
		}
	}
	return nil, false
}

// SaveSession stores u in the single global session slot.
func (s *GormStore) SaveSession(u models.User) error {
	return s.write(KeySession, u)
}

// GetSession returns the active session user, if any.
func (s *GormStore) GetSession() (*models.User, bool) {
	var u models.User
	if !s.read(KeySession, &u) {
		return nil, false
	}
	return &u, true
}

// ClearSession empties the session slot.
func (s *GormStore) ClearSession() error {
	return s.delete(KeySession)
}

// ProjectsFor returns the project list stored under email, empty when
// missing or unreadable. Lists stored under different emails never mix.
func (s *GormStore) ProjectsFor(email string) []models.Project {
	var projects []models.Project
	if !s.read(ProjectsKey(email), &projects) {
		return []models.Project{}
	}
	return projects
}

// SaveProjectsFor overwrites the full project list for email. There is no
// incremental update and no merge: last write wins.
func (s *GormStore) SaveProjectsFor(email string, projects []models.Project) error {
	return s.write(ProjectsKey(email), projects)
}
