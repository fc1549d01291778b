package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterRequest carries a role-dependent registration payload. The
// doctor-only fields are validated in the usecase once the role is known.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"user" validate:"required,oneof=patient doctor"`
	FullName string `json:"fullName" validate:"omitempty,min=2"`

	// Doctor-only
	Speciality   string            `json:"expertise" validate:"omitempty"`
	Experience   int               `json:"experience" validate:"omitempty,gte=0"`
	Availability []DayAvailability `json:"availability" validate:"omitempty,dive"`

	// Patient-only
	Age    int    `json:"age" validate:"omitempty,gte=0"`
	Gender string `json:"gender" validate:"omitempty"`
}

type DayAvailability struct {
	Day   string     `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Slots []TimeSlot `json:"slots" validate:"dive"`
}

type TimeSlot struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"user" validate:"required,oneof=patient doctor"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
