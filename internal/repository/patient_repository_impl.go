package repository

import (
	"errors"

	"go-appointment-board/internal/domain/entity"
	domainRepo "go-appointment-board/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByDocument(db *gorm.DB, document string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("document = ?", document).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
