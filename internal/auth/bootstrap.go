package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DhavalSuthar-24/matchday/internal/user"
	hash "github.com/DhavalSuthar-24/matchday/utils"
)

func createAccount(ctx context.Context, repo AuthRepository, name, email, password string, cost int, admin bool) (*user.User, error) {
	hashed, err := hash.HashPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &user.User{Name: name, Email: email, Password: hashed}
	if err := repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	roles := []string{user.RoleStaff}
	if admin {
		roles = append(roles, user.RoleAdmin)
	}
	for _, role := range roles {
		if err := repo.AssignRoleToUser(ctx, u.ID, role); err != nil {
			return nil, fmt.Errorf("assign role %s: %w", role, err)
		}
	}
	return repo.GetUserByID(ctx, u.ID)
}

// EnsureAdmin makes sure the configured bootstrap account exists and holds the
// admin role. Nothing happens when no email is configured.
func EnsureAdmin(ctx context.Context, repo AuthRepository, email, password string, cost int) error {
	if email == "" {
		slog.Info("no bootstrap admin configured")
		return nil
	}

	existing, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return repo.AssignRoleToUser(ctx, existing.ID, user.RoleAdmin)
	case !errors.Is(err, ErrUserNotFound):
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}

	if password == "" {
		return errors.New("ADMIN_PASSWORD is required to create the bootstrap admin")
	}
	u, err := createAccount(ctx, repo, "Administrator", email, password, cost, true)
	if err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}
	slog.Info("bootstrap admin created", slog.Uint64("user_id", uint64(u.ID)), slog.String("email", u.Email))
	return nil
}
