package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go-appointment-board/internal/domain/entity"
	"go-appointment-board/internal/domain/repository"
	"go-appointment-board/internal/service"
	"go-appointment-board/internal/tableview"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ActionOutcome is the explicit result of a row action. Actions report
// their outcome instead of being fired and forgotten, so callers can react
// to conflicts and missing rows.
type ActionOutcome string

const (
	ActionOutcomeSuccess  ActionOutcome = "success"
	ActionOutcomeConflict ActionOutcome = "conflict"
	ActionOutcomeNotFound ActionOutcome = "not_found"
)

// ReminderQueueKey is the Redis list reminder jobs are pushed onto.
const ReminderQueueKey = "reminder_queue"

type AppointmentActionUsecase interface {
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (ActionOutcome, error)
	SendReminder(ctx context.Context, appointmentID uuid.UUID) (ActionOutcome, error)
}

type appointmentActionUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	redisClient     *redis.Client
	loader          DatasetLoader
}

func NewAppointmentActionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	redisClient *redis.Client,
	loader DatasetLoader,
) AppointmentActionUsecase {
	return &appointmentActionUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		redisClient:     redisClient,
		loader:          loader,
	}
}

// CancelAppointment marks the appointment cancelled. Cancelling an already
// cancelled appointment is a conflict, not an error.
func (u *appointmentActionUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (ActionOutcome, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return "", err
	}
	if appointment == nil {
		return ActionOutcomeNotFound, nil
	}
	if appointment.Status == entity.AppointmentStatusCancelled {
		return ActionOutcomeConflict, nil
	}

	affected, err := u.appointmentRepo.UpdateStatus(u.db.WithContext(ctx), appointmentID, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return "", err
	}
	if affected == 0 {
		return ActionOutcomeNotFound, nil
	}

	// The board dataset changed; drop the cached snapshot.
	u.loader.Invalidate(ctx, service.ScheduleCacheKey)

	return ActionOutcomeSuccess, nil
}

// reminderJob is the payload pushed onto the reminder queue for the
// notification worker.
type reminderJob struct {
	AppointmentID string    `json:"appointment_id"`
	PatientName   string    `json:"patient_name"`
	Date          string    `json:"date"`
	Hour          string    `json:"hour"`
	EnqueuedAt    time.Time `json:"enqueued_at"`
}

// SendReminder enqueues a reminder job for the appointment. Reminders for
// cancelled appointments are a conflict.
func (u *appointmentActionUsecase) SendReminder(ctx context.Context, appointmentID uuid.UUID) (ActionOutcome, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return "", err
	}
	if appointment == nil {
		return ActionOutcomeNotFound, nil
	}
	if appointment.Status == entity.AppointmentStatusCancelled {
		return ActionOutcomeConflict, nil
	}

	job := reminderJob{
		AppointmentID: appointment.ID.String(),
		PatientName:   appointment.Patient.Name,
		Date:          appointment.Date.Format(tableview.DateLayout),
		Hour:          appointment.Hour,
		EnqueuedAt:    time.Now(),
	}

	payload, err := json.Marshal(job)
	if err != nil {
		u.log.Warnf("Failed to encode reminder job: %+v", err)
		return "", err
	}

	if err := u.redisClient.LPush(ctx, ReminderQueueKey, payload).Err(); err != nil {
		u.log.Warnf("Failed to enqueue reminder: %+v", err)
		return "", err
	}

	return ActionOutcomeSuccess, nil
}
