package repository

import (
	"errors"
	"time"

	"telehealth-connect/internal/domain/entity"
	domainRepo "telehealth-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatRepository struct{}

func NewChatRepository() domainRepo.ChatRepository {
	return &chatRepository{}
}

func (r *chatRepository) Create(db *gorm.DB, chat *entity.Chat) error {
	return db.Create(chat).Error
}

// FindByPair looks up the channel for a (doctor, patient) pair with its
// messages in append order.
func (r *chatRepository) FindByPair(db *gorm.DB, doctorID, patientID uuid.UUID) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("chat_messages.id ASC")
	}).Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		First(&chat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chat, nil
}

// AppendMessage inserts the message and bumps the channel's last_updated.
func (r *chatRepository) AppendMessage(db *gorm.DB, chatID uuid.UUID, message *entity.ChatMessage) error {
	message.ChatID = chatID
	if err := db.Create(message).Error; err != nil {
		return err
	}
	return db.Model(&entity.Chat{}).
		Where("id = ?", chatID).
		Update("last_updated", time.Now()).Error
}
