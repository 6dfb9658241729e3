package domain

import (
	"time"

	"github.com/google/uuid"
)

type RepairStatus string

const (
	RepairOpen      RepairStatus = "open"
	RepairCompleted RepairStatus = "completed"
)

type Repair struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	CarID       uuid.UUID    `json:"car_id" db:"car_id"`
	Description string       `json:"description" db:"description"`
	Cost        float64      `json:"cost" db:"cost"`
	Status      RepairStatus `json:"status" db:"status"`
	OpenedBy    uuid.UUID    `json:"opened_by" db:"opened_by"`
	OpenedAt    time.Time    `json:"opened_at" db:"opened_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
}

type CreateRepairInput struct {
	CarID       uuid.UUID `json:"car_id"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
}

func (i *CreateRepairInput) Validate() error {
	switch {
	case i.CarID == uuid.Nil:
		return MissingField("car_id")
	case i.Description == "":
		return MissingField("description")
	case i.Cost < 0:
		return InvalidField("cost", "is negative")
	}
	return nil
}
