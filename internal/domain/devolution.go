package domain

import (
	"time"

	"github.com/google/uuid"
)

// VehicleCondition is the state a car comes back in. Anything below
// "good" raises an alert and a notification round for employees.
type VehicleCondition string

const (
	ConditionExcellent VehicleCondition = "excellent"
	ConditionGood      VehicleCondition = "good"
	ConditionRegular   VehicleCondition = "regular"
	ConditionBad       VehicleCondition = "bad"
)

func (c VehicleCondition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionRegular, ConditionBad:
		return true
	default:
		return false
	}
}

func (c VehicleCondition) Alertworthy() bool {
	return c == ConditionRegular || c == ConditionBad
}

// Return records a vehicle coming back from a rental. ReturnedAt is the
// caller-supplied handover time; RecordedAt is assigned by the store
// when the row is written. Rows are immutable once created.
type Return struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	RentalID   uuid.UUID        `json:"renta_id" db:"rental_id"`
	CarID      uuid.UUID        `json:"auto_id" db:"car_id"`
	ReturnedAt time.Time        `json:"fecha_devolucion" db:"returned_at"`
	Condition  VehicleCondition `json:"estado_vehiculo" db:"condition"`
	Notes      *string          `json:"observaciones,omitempty" db:"notes"`
	ReceivedBy string           `json:"recibido_por" db:"received_by"`
	RecordedAt time.Time        `json:"recorded_at" db:"recorded_at"`
}

type CreateReturnInput struct {
	RentalID   uuid.UUID        `json:"renta_id"`
	CarID      uuid.UUID        `json:"auto_id"`
	ReturnedAt time.Time        `json:"fecha_devolucion"`
	Condition  VehicleCondition `json:"estado_vehiculo"`
	Notes      *string          `json:"observaciones,omitempty"`
	ReceivedBy string           `json:"recibido_por"`
}

func (i *CreateReturnInput) Validate() error {
	switch {
	case i.RentalID == uuid.Nil:
		return MissingField("renta_id")
	case i.CarID == uuid.Nil:
		return MissingField("auto_id")
	case i.ReturnedAt.IsZero():
		return MissingField("fecha_devolucion")
	case i.Condition == "":
		return MissingField("estado_vehiculo")
	case !i.Condition.IsValid():
		return InvalidField("estado_vehiculo", "must be one of excellent, good, regular, bad")
	case i.ReceivedBy == "":
		return MissingField("recibido_por")
	}
	return nil
}

// ReturnWithDetails is the list/read shape: a return enriched with the
// denormalized car and rental summaries the back-office tables display.
type ReturnWithDetails struct {
	Return
	CarBrand     string       `json:"car_brand" db:"car_brand"`
	CarModel     string       `json:"car_model" db:"car_model"`
	CarPlate     string       `json:"car_plate" db:"car_plate"`
	ClientName   string       `json:"client_name" db:"client_name"`
	RentalStart  time.Time    `json:"rental_start" db:"rental_start"`
	RentalEnd    time.Time    `json:"rental_end" db:"rental_end"`
	RentalStatus RentalStatus `json:"rental_status" db:"rental_status"`
}

// ReturnEvent is the payload handed to the notification fan-out when an
// alert-worthy return is recorded.
type ReturnEvent struct {
	Return *Return
	Car    *Car
}
