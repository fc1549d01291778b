package repository

import (
	"telehealth-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConnectionRequestRepository interface {
	Create(db *gorm.DB, request *entity.ConnectionRequest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConnectionRequest, error)
	FindByDoctorAndStatus(db *gorm.DB, doctorID uuid.UUID, statuses []entity.ConnectionStatus) ([]entity.ConnectionRequest, error)
	FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.ConnectionRequest, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.ConnectionStatus) (int64, error)
}
