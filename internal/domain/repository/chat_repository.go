package repository

import (
	"telehealth-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(db *gorm.DB, chat *entity.Chat) error
	FindByPair(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Chat, error)
	AppendMessage(db *gorm.DB, chatID uuid.UUID, message *entity.ChatMessage) error
}
