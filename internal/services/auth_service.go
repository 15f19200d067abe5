package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/storage"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrUserNotFound  = errors.New("user not found")
)

// AuthService handles the login-or-register flow. This is a capability
// boundary, not an authentication boundary: no credential is verified and
// any email claims that identity permanently.
type AuthService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(store storage.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: store, logger: logger}
}

// Login finds the user registered under email, or registers a new one with
// default level/xp. An existing record wins verbatim: the name supplied on a
// later login is discarded. The resulting user is saved as the session.
func (s *AuthService) Login(name, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	user, ok := s.store.FindUserByEmail(email)
	if !ok {
		displayName := strings.TrimSpace(name)
		if displayName == "" {
			displayName = constants.DefaultUserName
		}
		registered := s.store.RegisterUser(models.User{
			Name:   displayName,
			Email:  email,
			Avatar: "",
			Level:  constants.DefaultUserLevel,
			XP:     constants.DefaultUserXP,
		})
		user = &registered
		s.logger.Info("registered new user", zap.String("email", email))
	}

	if err := s.store.SaveSession(*user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session slot.
func (s *AuthService) Logout() error {
	return s.store.ClearSession()
}

// GetUser returns the registered user for email.
func (s *AuthService) GetUser(email string) (*models.User, error) {
	user, ok := s.store.FindUserByEmail(email)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
