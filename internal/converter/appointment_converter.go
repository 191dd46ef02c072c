package converter

import (
	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/domain/entity"
	"go-appointment-board/internal/tableview"
)

// AppointmentToRow converts an Appointment entity to the view engine's row
// shape. Dates are rendered in the canonical calendar form the date filter
// compares against.
func AppointmentToRow(appointment *entity.Appointment) tableview.Row {
	return tableview.Row{
		ID:   appointment.ID.String(),
		Date: appointment.Date.Format(tableview.DateLayout),
		Hour: appointment.Hour,
		Patient: tableview.Patient{
			ID:       appointment.Patient.ID.String(),
			Name:     appointment.Patient.Name,
			Age:      appointment.Patient.Age,
			Document: appointment.Patient.Document,
		},
	}
}

// AppointmentsToRows converts a slice of Appointment entities to view rows.
func AppointmentsToRows(appointments []entity.Appointment) []tableview.Row {
	rows := make([]tableview.Row, len(appointments))
	for i := range appointments {
		rows[i] = AppointmentToRow(&appointments[i])
	}
	return rows
}

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:     appointment.ID,
		Date:   appointment.Date.Format(tableview.DateLayout),
		Hour:   appointment.Hour,
		Status: appointment.Status,
		Fee:    appointment.Fee,
		Patient: dto.PatientResponse{
			ID:       appointment.Patient.ID,
			Name:     appointment.Patient.Name,
			Age:      appointment.Patient.Age,
			Document: appointment.Patient.Document,
		},
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to
// response DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
