package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstay/farmstay-server/internal/config"
	"github.com/farmstay/farmstay-server/internal/models"
	"github.com/farmstay/farmstay-server/internal/repository"
	"github.com/farmstay/farmstay-server/internal/seed"
	"github.com/farmstay/farmstay-server/internal/store"
	"github.com/farmstay/farmstay-server/internal/utils"
)

func newTestRepository(t *testing.T) *repository.SQLiteRepository {
	t.Helper()

	cfg := config.LoadConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "state.db")

	db, err := config.SetupDatabase(cfg)
	require.NoError(t, err, "Failed to set up test storage")
	t.Cleanup(func() { db.Close() })

	return repository.NewSQLiteRepository(db)
}

func newSessionStore(t *testing.T, repo repository.Repository) *store.SessionStore {
	t.Helper()

	s, err := store.NewSessionStore(context.Background(), repo, seed.Users(), utils.NewLogger())
	require.NoError(t, err)
	return s
}

func TestLogin(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)
	ctx := context.Background()

	// Successful login with a seed account
	user, err := sessions.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)

	current := sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, "john@example.com", current.Email)

	// Wrong password
	_, err = sessions.Login(ctx, "john@example.com", "wrongpassword")
	assert.True(t, errors.Is(err, store.ErrInvalidCredentials))

	// Unknown email fails with the same error
	_, err = sessions.Login(ctx, "nobody@example.com", "password123")
	assert.True(t, errors.Is(err, store.ErrInvalidCredentials))

	// Email matching is case-sensitive
	_, err = sessions.Login(ctx, "John@example.com", "password123")
	assert.True(t, errors.Is(err, store.ErrInvalidCredentials))
}

func TestRegister(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)
	ctx := context.Background()

	user, err := sessions.Register(ctx, "new@example.com", "secret", "New User", models.RoleCustomer, "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// The new account becomes the current identity
	current := sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	// Registered accounts can log in
	_, err = sessions.Login(ctx, "new@example.com", "secret")
	assert.NoError(t, err)

	// Duplicate email
	_, err = sessions.Register(ctx, "new@example.com", "other", "Someone Else", models.RoleOwner, "")
	assert.True(t, errors.Is(err, store.ErrDuplicateAccount))

	// Seed emails are taken too
	_, err = sessions.Register(ctx, "john@example.com", "other", "Impostor", models.RoleCustomer, "")
	assert.True(t, errors.Is(err, store.ErrDuplicateAccount))
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)

	_, err := sessions.Register(context.Background(), "admin@example.com", "secret", "Admin", models.Role("admin"), "")
	assert.Error(t, err)
	assert.Nil(t, sessions.Current())
}

func TestLogout(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)
	ctx := context.Background()

	_, err := sessions.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, sessions.Logout(ctx))
	assert.Nil(t, sessions.Current())

	// Logout is idempotent
	require.NoError(t, sessions.Logout(ctx))
	assert.Nil(t, sessions.Current())
}

func TestSessionSurvivesReload(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)
	ctx := context.Background()

	user, err := sessions.Register(ctx, "reload@example.com", "secret", "Reload User", models.RoleOwner, "")
	require.NoError(t, err)

	// A fresh store over the same storage sees the persisted identity
	reloaded := newSessionStore(t, repo)
	current := reloaded.Current()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, "reload@example.com", current.Email)
}

func TestLogoutSurvivesReload(t *testing.T) {
	repo := newTestRepository(t)
	sessions := newSessionStore(t, repo)
	ctx := context.Background()

	_, err := sessions.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, sessions.Logout(ctx))

	reloaded := newSessionStore(t, repo)
	assert.Nil(t, reloaded.Current())
}

func TestMalformedPersistedSessionTreatedAsAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "currentUser", "{not valid json"))
	sessions := newSessionStore(t, repo)
	assert.Nil(t, sessions.Current())

	// A value of the wrong shape is also treated as absent
	require.NoError(t, repo.Set(ctx, "currentUser", `{"unexpected":true}`))
	sessions = newSessionStore(t, repo)
	assert.Nil(t, sessions.Current())
}
