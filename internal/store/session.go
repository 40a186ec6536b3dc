package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/farmstay/farmstay-server/internal/models"
	"github.com/farmstay/farmstay-server/internal/repository"
)

const currentUserKey = "currentUser"

var (
	// ErrInvalidCredentials is returned on any failed login. Unknown email
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateAccount is returned when registering an email that is
	// already taken.
	ErrDuplicateAccount = errors.New("user with this email already exists")
)

// SessionStore tracks at most one authenticated identity and persists it
// so it survives restarts. The user registry it matches against lives in
// memory only: the seed accounts plus any registrations made during the
// process lifetime.
type SessionStore struct {
	mu       sync.Mutex
	repo     repository.Repository
	log      *logrus.Logger
	registry []models.User
	current  *models.User
}

// NewSessionStore builds the store and hydrates the persisted identity.
// A persisted value that fails to deserialize, or that is missing its id
// or email, is treated as absent rather than an error.
func NewSessionStore(ctx context.Context, repo repository.Repository, registry []models.User, log *logrus.Logger) (*SessionStore, error) {
	s := &SessionStore{
		repo:     repo,
		log:      log,
		registry: append([]models.User(nil), registry...),
	}

	raw, ok, err := repo.Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("error reading persisted session: %w", err)
	}

	if ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" || user.Email == "" {
			log.Warn("discarding malformed persisted session")
		} else {
			s.current = &user
		}
	}

	return s, nil
}

// Current returns a copy of the authenticated identity, or nil when no
// one is logged in.
func (s *SessionStore) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Login matches email and password exactly, case-sensitively, against the
// registry.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registry {
		if s.registry[i].Email == email && s.registry[i].Password == password {
			user := s.registry[i]
			s.current = &user
			if err := s.persistLocked(ctx); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Register creates a fresh account, appends it to the in-memory registry
// and makes it the current identity.
func (s *SessionStore) Register(ctx context.Context, email, password, name string, role models.Role, phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registry {
		if s.registry[i].Email == email {
			return nil, ErrDuplicateAccount
		}
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      role,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid account details: %w", err)
	}

	s.registry = append(s.registry, user)
	s.current = &user
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	result := user
	return &result, nil
}

// Logout clears the current identity. Calling it while logged out is a
// no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.repo.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("error removing persisted session: %w", err)
	}
	return nil
}

func (s *SessionStore) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("error serializing session: %w", err)
	}
	if err := s.repo.Set(ctx, currentUserKey, string(data)); err != nil {
		return fmt.Errorf("error persisting session: %w", err)
	}
	return nil
}
