package auth

import (
	"context"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/DhavalSuthar-24/matchday/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) AuthRepository {
	t.Helper()
	db := dbtest.Open(t, &user.Role{}, &user.User{}, &user.RefreshToken{})
	return NewAuthRepository(db)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	u := &user.User{Name: "Jane", Email: " Jane@Example.com ", Password: "x"}
	require.NoError(t, repo.CreateUser(ctx, u))

	found, err := repo.GetUserByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "jane@example.com", found.Email)

	err = repo.CreateUser(ctx, &user.User{Name: "Other", Email: "jane@EXAMPLE.com", Password: "y"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.GetUserByID(ctx, u.ID+1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAssignRoleIsIdempotent(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	u := &user.User{Name: "Jane", Email: "jane@example.com", Password: "x"}
	require.NoError(t, repo.CreateUser(ctx, u))

	require.NoError(t, repo.AssignRoleToUser(ctx, u.ID, "Admin"))
	require.NoError(t, repo.AssignRoleToUser(ctx, u.ID, user.RoleAdmin))
	require.NoError(t, repo.AssignRoleToUser(ctx, u.ID, user.RoleStaff))

	roles, err := repo.GetUserRoles(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "staff"}, roles)

	loaded, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin", "staff"}, loaded.RoleNames())

	assert.ErrorIs(t, repo.AssignRoleToUser(ctx, 999, user.RoleAdmin), ErrUserNotFound)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	u := &user.User{Name: "Jane", Email: "jane@example.com", Password: "x"}
	require.NoError(t, repo.CreateUser(ctx, u))

	live := &user.RefreshToken{UserID: u.ID, Token: "live", ExpiresAt: time.Now().Add(time.Hour)}
	stale := &user.RefreshToken{UserID: u.ID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repo.SaveRefreshToken(ctx, live))
	require.NoError(t, repo.SaveRefreshToken(ctx, stale))

	got, err := repo.GetRefreshToken(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)

	_, err = repo.GetRefreshToken(ctx, "stale")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	require.NoError(t, repo.InvalidateRefreshToken(ctx, "live"))
	_, err = repo.GetRefreshToken(ctx, "live")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	other := &user.RefreshToken{UserID: u.ID, Token: "other", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.SaveRefreshToken(ctx, other))
	require.NoError(t, repo.InvalidateAllRefreshTokensForUser(ctx, u.ID))
	_, err = repo.GetRefreshToken(ctx, "other")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, repo, "", "", 4))

	require.NoError(t, EnsureAdmin(ctx, repo, "root@example.com", "s3cret-pass", 4))
	require.NoError(t, EnsureAdmin(ctx, repo, "root@example.com", "s3cret-pass", 4))

	admin, err := repo.GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{user.RoleAdmin, user.RoleStaff}, admin.RoleNames())
	assert.NotEqual(t, "s3cret-pass", admin.Password)

	staff := &user.User{Name: "Sam", Email: "sam@example.com", Password: "x"}
	require.NoError(t, repo.CreateUser(ctx, staff))
	require.NoError(t, EnsureAdmin(ctx, repo, "sam@example.com", "", 4))
	roles, err := repo.GetUserRoles(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.RoleAdmin}, roles)

	assert.Error(t, EnsureAdmin(ctx, repo, "new@example.com", "", 4))
}
