package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

type Rental struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	ClientID   uuid.UUID    `json:"client_id" db:"client_id"`
	CarID      uuid.UUID    `json:"car_id" db:"car_id"`
	StartDate  time.Time    `json:"start_date" db:"start_date"`
	EndDate    time.Time    `json:"end_date" db:"end_date"`
	TotalPrice float64      `json:"total_price" db:"total_price"`
	Status     RentalStatus `json:"status" db:"status"`
	CreatedBy  uuid.UUID    `json:"created_by" db:"created_by"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}

type CreateRentalInput struct {
	ClientID   uuid.UUID `json:"client_id"`
	CarID      uuid.UUID `json:"car_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
}

func (i *CreateRentalInput) Validate() error {
	switch {
	case i.ClientID == uuid.Nil:
		return MissingField("client_id")
	case i.CarID == uuid.Nil:
		return MissingField("car_id")
	case i.StartDate.IsZero():
		return MissingField("start_date")
	case i.EndDate.IsZero():
		return MissingField("end_date")
	case i.EndDate.Before(i.StartDate):
		return InvalidField("end_date", "is before start_date")
	case i.TotalPrice < 0:
		return InvalidField("total_price", "is negative")
	}
	return nil
}
