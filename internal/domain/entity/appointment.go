package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Appointment statuses.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment represents one scheduled appointment. Date carries the
// calendar day only; Hour is a zero-padded HH:MM string matching the time
// column.
type Appointment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_appointments_slot" json:"patient_id"`
	Date      time.Time       `gorm:"type:date;not null;index;uniqueIndex:uq_appointments_slot" json:"date"`
	Hour      string          `gorm:"type:time;not null;uniqueIndex:uq_appointments_slot" json:"hour"`
	Status    string          `gorm:"type:varchar(16);not null;default:scheduled" json:"status"`
	Fee       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
