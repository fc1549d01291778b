package converter

import (
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
)

// MessageToResponse converts a ChatMessage entity to its DTO
func MessageToResponse(message *entity.ChatMessage) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		Sender:    message.Sender,
		Text:      message.Text,
		Timestamp: message.Timestamp,
	}
}

// ChatToResponse converts a Chat entity with its messages to a DTO.
// The message list is always non-nil so a fresh channel serializes as [].
func ChatToResponse(chat *entity.Chat) *dto.ChatResponse {
	if chat == nil {
		return nil
	}

	messages := make([]dto.MessageResponse, len(chat.Messages))
	for i, message := range chat.Messages {
		messages[i] = *MessageToResponse(&message)
	}

	return &dto.ChatResponse{
		ID:          chat.ID,
		DoctorID:    chat.DoctorID,
		PatientID:   chat.PatientID,
		Messages:    messages,
		CreatedAt:   chat.CreatedAt,
		LastUpdated: chat.LastUpdated,
	}
}
