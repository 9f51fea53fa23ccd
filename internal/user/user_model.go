package user

import (
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/models"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a staff account. Only users holding RoleAdmin may change league data.
type User struct {
	models.Model
	Name      string     `gorm:"size:75;not null" json:"name"`
	Email     string     `gorm:"size:75;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Roles     []Role     `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

func (User) TableName() string { return "users" }

type Role struct {
	models.Model
	Name string `gorm:"size:30;uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string { return "roles" }

// RefreshToken records an issued refresh token so it can be revoked on logout.
type RefreshToken struct {
	models.Model
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"size:512;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

// RoleNames flattens the preloaded roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
