package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrRefreshTokenNotFound = errors.New("refresh token not found or expired")
)

type AuthRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id uint) (*user.User, error)
	TouchLastLogin(ctx context.Context, userID uint, at time.Time) error

	SaveRefreshToken(ctx context.Context, token *user.RefreshToken) error
	GetRefreshToken(ctx context.Context, tokenString string) (*user.RefreshToken, error)
	InvalidateRefreshToken(ctx context.Context, tokenString string) error
	InvalidateAllRefreshTokensForUser(ctx context.Context, userID uint) error

	AssignRoleToUser(ctx context.Context, userID uint, role string) error
	GetUserRoles(ctx context.Context, userID uint) ([]string, error)
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *authRepository) CreateUser(ctx context.Context, u *user.User) error {
	u.Email = normalizeEmail(u.Email)
	var count int64
	if err := r.db.WithContext(ctx).Model(&user.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.WithContext(ctx).Omit("Roles").Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", normalizeEmail(email)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) TouchLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", userID).Update("last_login", at).Error
}

func (r *authRepository) SaveRefreshToken(ctx context.Context, token *user.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *authRepository) GetRefreshToken(ctx context.Context, tokenString string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ? AND revoked = ?", tokenString, time.Now(), false).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(ctx context.Context, tokenString string) error {
	return r.db.WithContext(ctx).Model(&user.RefreshToken{}).Where("token = ?", tokenString).Update("revoked", true).Error
}

func (r *authRepository) InvalidateAllRefreshTokensForUser(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Model(&user.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate all refresh tokens: %w", result.Error)
	}
	return nil
}

// AssignRoleToUser creates the role on first use. Assigning a role twice is a no-op.
func (r *authRepository) AssignRoleToUser(ctx context.Context, userID uint, role string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u user.User
		if err := tx.First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var rl user.Role
		if err := tx.Where(user.Role{Name: strings.ToLower(role)}).FirstOrCreate(&rl).Error; err != nil {
			return fmt.Errorf("find or create role %q: %w", role, err)
		}
		return tx.Table("user_roles").Clauses(clause.OnConflict{DoNothing: true}).
			Create(map[string]interface{}{"user_id": u.ID, "role_id": rl.ID}).Error
	})
}

func (r *authRepository) GetUserRoles(ctx context.Context, userID uint) ([]string, error) {
	var roles []string
	err := r.db.WithContext(ctx).Table("roles").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name").
		Pluck("roles.name", &roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
