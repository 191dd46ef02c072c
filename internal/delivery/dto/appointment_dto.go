package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Date    string               `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Hour    string               `json:"hour" validate:"required"` // Format: HH:MM
	Fee     string               `json:"fee" validate:"omitempty"`
	Patient CreatePatientRequest `json:"patient" validate:"required"`
}

type CreatePatientRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
	Document string `json:"document" validate:"required,min=3,max=32"`
}

type ListAppointmentsQuery struct {
	StartAt     string `json:"start_at" validate:"omitempty"` // Format: YYYY-MM-DD
	EndAt       string `json:"end_at" validate:"omitempty"`   // Format: YYYY-MM-DD
	PatientName string `json:"patient_name" validate:"omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=scheduled cancelled"`
}

// Response DTOs

type PatientResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	Document string    `json:"document"`
}

type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Hour      string          `json:"hour"`
	Status    string          `json:"status"`
	Fee       decimal.Decimal `json:"fee"`
	Patient   PatientResponse `json:"patient"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// ActionResponse reports the outcome of an appointment command
// (cancel, send reminder).
type ActionResponse struct {
	Outcome string `json:"outcome"` // success | conflict | not_found
}
