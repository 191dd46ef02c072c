package repository

import (
	"go-appointment-board/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByDocument(db *gorm.DB, document string) (*entity.Patient, error)
}
