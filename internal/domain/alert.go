package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
)

const AlertVehicleCondition = "vehicle_bad_condition"

type Alert struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	CarID      uuid.UUID     `json:"car_id" db:"car_id"`
	Category   string        `json:"category" db:"category"`
	Message    string        `json:"message" db:"message"`
	Severity   AlertSeverity `json:"severity" db:"severity"`
	CreatedBy  string        `json:"created_by" db:"created_by"`
	Resolved   bool          `json:"resolved" db:"resolved"`
	ResolvedBy *uuid.UUID    `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

// SeverityForCondition maps a returned-vehicle condition to the alert
// severity raised for it. Only regular and bad conditions alert.
func SeverityForCondition(c VehicleCondition) AlertSeverity {
	if c == ConditionBad {
		return SeverityHigh
	}
	return SeverityMedium
}
