package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

// UserDetailResponse is the directory projection for GET /users/{id}.
type UserDetailResponse struct {
	ID         uuid.UUID `json:"_id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email"`
	Image      string    `json:"image,omitempty"`
	Role       string    `json:"role"`
	Speciality string    `json:"speciality,omitempty"`
	Experience int       `json:"experience,omitempty"`
}

type DoctorResponse struct {
	ID           uuid.UUID         `json:"_id"`
	Name         string            `json:"name,omitempty"`
	Email        string            `json:"email"`
	Image        string            `json:"image,omitempty"`
	Speciality   string            `json:"speciality"`
	Experience   int               `json:"experience"`
	Availability []DayAvailability `json:"availability"`
}
