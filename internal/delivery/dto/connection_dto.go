package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateConnectionRequest struct {
	DoctorID  uuid.UUID `json:"doctorId" validate:"required"`
	PatientID uuid.UUID `json:"patientId" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	Time      string    `json:"time" validate:"required"`
}

// UpdateConnectionStatusRequest only admits the two doctor-initiated
// transitions; a request never moves back to pending.
type UpdateConnectionStatusRequest struct {
	RequestID uuid.UUID `json:"requestId" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=accepted rejected"`
}

// Response DTOs

type ConnectionResponse struct {
	ID        uuid.UUID `json:"_id"`
	DoctorID  uuid.UUID `json:"doctorId"`
	PatientID uuid.UUID `json:"patientId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PatientSummary is the patient projection embedded in the doctor-facing
// listing. Missing fields carry the documented defaults rather than nulls.
type PatientSummary struct {
	ID             uuid.UUID  `json:"_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Image          string     `json:"image"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	MedicalHistory []string   `json:"medicalHistory"`
	LastVisit      *time.Time `json:"lastVisit"`
	JoinedDate     *time.Time `json:"joinedDate"`
}

type DoctorConnectionResponse struct {
	ID        uuid.UUID      `json:"_id"`
	Status    string         `json:"status"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Patient   PatientSummary `json:"patient"`
}

type PatientAppointmentResponse struct {
	ID         uuid.UUID `json:"_id"`
	DoctorID   uuid.UUID `json:"doctorId"`
	PatientID  uuid.UUID `json:"patientId"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	DoctorName string    `json:"doctorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
