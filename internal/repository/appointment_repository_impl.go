package repository

import (
	"errors"

	"go-appointment-board/internal/domain/entity"
	domainRepo "go-appointment-board/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Order("date ASC, hour ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindAllFiltered returns appointments narrowed by the optional filter:
// date range, patient name, and status.
func (r *appointmentRepository) FindAllFiltered(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.
		Joins("JOIN patients ON patients.id = appointments.patient_id")

	if filter != nil {
		if filter.StartAt != "" {
			query = query.Where("appointments.date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("appointments.date <= ?", filter.EndAt)
		}
		if filter.PatientName != "" {
			query = query.Where("patients.name ILIKE ?", "%"+filter.PatientName+"%")
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
	}

	err := query.
		Preload("Patient").
		Order("date ASC, hour ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status string) (int64, error) {
	result := db.Model(&entity.Appointment{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
