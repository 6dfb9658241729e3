package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleEmployee     UserRole = "employee"
	RoleFleetManager UserRole = "fleet-manager"
	RoleOwner        UserRole = "owner"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleFleetManager, RoleOwner:
		return true
	default:
		return false
	}
}

type User struct {
	ID                     uuid.UUID  `json:"id" db:"id"`
	Email                  string     `json:"email" db:"email"`
	PasswordHash           string     `json:"-" db:"password_hash"`
	FullName               string     `json:"full_name" db:"full_name"`
	Role                   string     `json:"role" db:"role"`
	IsActive               bool       `json:"is_active" db:"is_active"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
	CreatedAt              time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt              *time.Time `json:"-" db:"deleted_at"`
}

// HasRole implements the back-office hierarchy: owner covers
// fleet-manager, fleet-manager covers employee.
func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case string(RoleOwner):
		return u.Role == string(RoleOwner)
	case string(RoleFleetManager):
		return u.Role == string(RoleFleetManager) || u.Role == string(RoleOwner)
	case string(RoleEmployee):
		return u.Role == string(RoleEmployee) || u.Role == string(RoleFleetManager) || u.Role == string(RoleOwner)
	default:
		return false
	}
}

type CreateUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (i *CreateUserInput) Validate() error {
	switch {
	case i.Email == "":
		return MissingField("email")
	case i.Password == "":
		return MissingField("password")
	case len(i.Password) < 8:
		return InvalidField("password", "must be at least 8 characters")
	case i.FullName == "":
		return MissingField("full_name")
	case i.Role != "" && !UserRole(i.Role).IsValid():
		return InvalidField("role", "must be one of employee, fleet-manager, owner")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AssignRoleInput struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
