package domain

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	FullName      string     `json:"full_name" db:"full_name"`
	Email         string     `json:"email" db:"email"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	LicenseNumber string     `json:"license_number" db:"license_number"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"-" db:"deleted_at"`
}

type CreateClientInput struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNumber string  `json:"license_number"`
}

func (i *CreateClientInput) Validate() error {
	switch {
	case i.FullName == "":
		return MissingField("full_name")
	case i.Email == "":
		return MissingField("email")
	case i.LicenseNumber == "":
		return MissingField("license_number")
	}
	return nil
}

type UpdateClientInput struct {
	FullName      *string `json:"full_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
