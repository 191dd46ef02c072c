package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-appointment-board/internal/converter"
	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/domain/entity"
	"go-appointment-board/internal/domain/repository"
	"go-appointment-board/internal/service"
	"go-appointment-board/internal/tableview"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrSlotAlreadyBooked      = errors.New("appointment slot already booked")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrInvalidHourFormat      = errors.New("invalid time format, use HH:MM")
	ErrInvalidFee             = errors.New("invalid fee amount")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	loader          DatasetLoader
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	loader DatasetLoader,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		loader:          loader,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Parse appointment date
	date, err := time.Parse(tableview.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	// Validate time format
	if _, err := time.Parse("15:04", req.Hour); err != nil {
		return nil, ErrInvalidHourFormat
	}

	fee := decimal.Zero
	if req.Fee != "" {
		fee, err = decimal.NewFromString(req.Fee)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidFee
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Reuse the patient when the document is already known
	patient, err := u.patientRepo.FindByDocument(tx, req.Patient.Document)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		patient = &entity.Patient{
			ID:       uuid.New(),
			Name:     req.Patient.Name,
			Age:      req.Patient.Age,
			Document: req.Patient.Document,
		}
		if err := u.patientRepo.Create(tx, patient); err != nil {
			u.log.Warnf("Failed to create patient: %+v", err)
			return nil, err
		}
	}

	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: patient.ID,
		Date:      date,
		Hour:      req.Hour,
		Status:    entity.AppointmentStatusScheduled,
		Fee:       fee,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_slot") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// The board dataset changed; drop the cached snapshot.
	u.loader.Invalidate(ctx, service.ScheduleCacheKey)

	appointment.Patient = *patient
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, query *dto.ListAppointmentsQuery) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{
		StartAt:     query.StartAt,
		EndAt:       query.EndAt,
		PatientName: query.PatientName,
		Status:      query.Status,
	}

	appointments, err := u.appointmentRepo.FindAllFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
