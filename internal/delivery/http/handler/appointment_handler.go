package handler

import (
	"encoding/json"
	"net/http"

	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/usecase"
	"go-appointment-board/pkg/response"
	"go-appointment-board/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	actionUsecase      usecase.AppointmentActionUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	actionUsecase usecase.AppointmentActionUsecase,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		actionUsecase:      actionUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAppointmentDate:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidHourFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrInvalidFee:
			response.Error(w, http.StatusBadRequest, "Invalid fee amount", nil)
		case usecase.ErrSlotAlreadyBooked:
			response.Error(w, http.StatusConflict, "Appointment slot already booked", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	query := dto.ListAppointmentsQuery{
		StartAt:     r.URL.Query().Get("start_at"),
		EndAt:       r.URL.Query().Get("end_at"),
		PatientName: r.URL.Query().Get("patient_name"),
		Status:      r.URL.Query().Get("status"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.ListAppointments(r.Context(), &query)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	outcome, err := h.actionUsecase.CancelAppointment(r.Context(), appointmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to cancel appointment")
		return
	}

	h.writeOutcome(w, outcome, "Appointment cancelled successfully", "Appointment is already cancelled")
}

func (h *AppointmentHandler) SendReminder(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	outcome, err := h.actionUsecase.SendReminder(r.Context(), appointmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to send reminder")
		return
	}

	h.writeOutcome(w, outcome, "Reminder queued successfully", "Cannot send a reminder for a cancelled appointment")
}

func (h *AppointmentHandler) appointmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, false
	}
	return appointmentID, true
}

func (h *AppointmentHandler) writeOutcome(w http.ResponseWriter, outcome usecase.ActionOutcome, successMsg, conflictMsg string) {
	result := &dto.ActionResponse{Outcome: string(outcome)}
	switch outcome {
	case usecase.ActionOutcomeSuccess:
		response.Success(w, http.StatusOK, successMsg, result)
	case usecase.ActionOutcomeConflict:
		response.Error(w, http.StatusConflict, conflictMsg, result)
	case usecase.ActionOutcomeNotFound:
		response.NotFound(w, "Appointment not found")
	default:
		response.InternalServerError(w, "Unexpected action outcome")
	}
}
