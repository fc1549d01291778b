package usecase

import (
	"context"
	"errors"

	"telehealth-connect/internal/converter"
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
	"telehealth-connect/internal/domain/repository"
	"telehealth-connect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrChatNotFound = errors.New("chat not found")

type ChatUsecase interface {
	GetOrCreateChat(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.ChatResponse, error)
	AppendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
}

type chatUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	chatRepo repository.ChatRepository
}

func NewChatUsecase(db *gorm.DB, log *logrus.Logger, chatRepo repository.ChatRepository) ChatUsecase {
	return &chatUsecase{
		db:       db,
		log:      log,
		chatRepo: chatRepo,
	}
}

// GetOrCreateChat returns the channel for the pair, creating an empty one
// on first access.
func (u *chatUsecase) GetOrCreateChat(ctx context.Context, doctorID, patientID uuid.UUID) (*dto.ChatResponse, error) {
	chat, err := u.resolveChat(ctx, doctorID, patientID)
	if err != nil {
		return nil, err
	}
	return converter.ChatToResponse(chat), nil
}

// AppendMessage resolves or creates the channel, appends the message with
// a server-assigned timestamp and returns just the new message so the
// caller can render it optimistically.
func (u *chatUsecase) AppendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	chat, err := u.resolveChat(ctx, req.DoctorID, req.PatientID)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		Sender: req.Sender,
		Text:   req.Message,
	}

	if err := u.chatRepo.AppendMessage(u.db.WithContext(ctx), chat.ID, message); err != nil {
		u.log.Warnf("Failed to append message to chat %s: %+v", chat.ID, err)
		return nil, err
	}

	metrics.ChatMessagesSent.Inc()
	return converter.MessageToResponse(message), nil
}

// resolveChat implements find-or-create for one (doctor, patient) pair.
// The unique index on the pair turns a concurrent double-create into a
// constraint violation; the loser re-reads and returns the winner's row.
func (u *chatUsecase) resolveChat(ctx context.Context, doctorID, patientID uuid.UUID) (*entity.Chat, error) {
	db := u.db.WithContext(ctx)

	chat, err := u.chatRepo.FindByPair(db, doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find chat for doctor=%s patient=%s: %+v", doctorID, patientID, err)
		return nil, err
	}
	if chat != nil {
		return chat, nil
	}

	chat = &entity.Chat{
		DoctorID:  doctorID,
		PatientID: patientID,
		Messages:  []entity.ChatMessage{},
	}

	if createErr := u.chatRepo.Create(db, chat); createErr != nil {
		existing, findErr := u.chatRepo.FindByPair(db, doctorID, patientID)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		u.log.Warnf("Failed to create chat for doctor=%s patient=%s: %+v", doctorID, patientID, createErr)
		return nil, createErr
	}

	u.log.Infof("Chat created: id=%s, doctor=%s, patient=%s", chat.ID, doctorID, patientID)
	return chat, nil
}
