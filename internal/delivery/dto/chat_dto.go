package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SendMessageRequest struct {
	DoctorID  uuid.UUID `json:"doctorId" validate:"required"`
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	Message   string    `json:"message" validate:"required"`
	Sender    string    `json:"sender" validate:"required,oneof=doctor patient"`
}

// Response DTOs

type MessageResponse struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatResponse struct {
	ID          uuid.UUID         `json:"_id"`
	DoctorID    uuid.UUID         `json:"doctorId"`
	PatientID   uuid.UUID         `json:"patientId"`
	Messages    []MessageResponse `json:"messages"`
	CreatedAt   time.Time         `json:"createdAt"`
	LastUpdated time.Time         `json:"lastUpdated"`
}
