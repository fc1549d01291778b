package repository

import (
	"telehealth-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindDoctors(db *gorm.DB) ([]entity.User, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.User, error)
}
