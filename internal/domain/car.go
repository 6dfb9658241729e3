package domain

import (
	"time"

	"github.com/google/uuid"
)

type Car struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Brand      string     `json:"brand" db:"brand"`
	Model      string     `json:"model" db:"model"`
	Year       int        `json:"year" db:"year"`
	Plate      string     `json:"plate" db:"plate"`
	Category   string     `json:"category" db:"category"`
	OdometerKm int        `json:"odometer_km" db:"odometer_km"`
	Available  bool       `json:"available" db:"available"`
	IntakeDate time.Time  `json:"intake_date" db:"intake_date"`
	PhotoURL   *string    `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt  *time.Time `json:"-" db:"deleted_at"`
}

// Label is the short human-readable form used in alert and
// notification messages.
func (c *Car) Label() string {
	return c.Brand + " " + c.Model + " (" + c.Plate + ")"
}

type CreateCarInput struct {
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	Year       int        `json:"year"`
	Plate      string     `json:"plate"`
	Category   string     `json:"category"`
	OdometerKm int        `json:"odometer_km"`
	IntakeDate *time.Time `json:"intake_date,omitempty"`
}

func (i *CreateCarInput) Validate() error {
	switch {
	case i.Brand == "":
		return MissingField("brand")
	case i.Model == "":
		return MissingField("model")
	case i.Plate == "":
		return MissingField("plate")
	case i.Year < 1950:
		return InvalidField("year", "is out of range")
	}
	return nil
}

type UpdateCarInput struct {
	Brand      *string `json:"brand,omitempty"`
	Model      *string `json:"model,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Category   *string `json:"category,omitempty"`
	OdometerKm *int    `json:"odometer_km,omitempty"`
}
