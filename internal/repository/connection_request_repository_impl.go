package repository

import (
	"errors"

	"telehealth-connect/internal/domain/entity"
	domainRepo "telehealth-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type connectionRequestRepository struct{}

func NewConnectionRequestRepository() domainRepo.ConnectionRequestRepository {
	return &connectionRequestRepository{}
}

func (r *connectionRequestRepository) Create(db *gorm.DB, request *entity.ConnectionRequest) error {
	return db.Create(request).Error
}

func (r *connectionRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConnectionRequest, error) {
	var request entity.ConnectionRequest
	err := db.Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// FindByDoctorAndStatus returns the doctor's requests matching any of the
// given statuses, most recent first.
func (r *connectionRequestRepository) FindByDoctorAndStatus(db *gorm.DB, doctorID uuid.UUID, statuses []entity.ConnectionStatus) ([]entity.ConnectionRequest, error) {
	var requests []entity.ConnectionRequest
	err := db.Where("doctor_id = ? AND status IN ?", doctorID, statuses).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByPatient returns all of a patient's requests ordered soonest
// appointment first.
func (r *connectionRequestRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.ConnectionRequest, error) {
	var requests []entity.ConnectionRequest
	err := db.Where("patient_id = ?", patientID).
		Order("date ASC, time ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus sets the status for a single request id and returns the
// affected row count; 0 means no request matched the id.
func (r *connectionRequestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.ConnectionStatus) (int64, error) {
	result := db.Model(&entity.ConnectionRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
