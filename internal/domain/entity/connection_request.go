package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectionStatus represents the status of a connection request
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ConnectionRequest records a patient's proposal to meet a doctor at a
// date/time slot. Transitions are doctor-initiated and one-directional:
// pending -> accepted or pending -> rejected.
type ConnectionRequest struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"doctorId"`
	PatientID uuid.UUID        `gorm:"type:uuid;not null;index" json:"patientId"`
	Date      string           `gorm:"type:varchar(10);not null" json:"date"`
	Time      string           `gorm:"type:varchar(5);not null" json:"time"`
	Status    ConnectionStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (ConnectionRequest) TableName() string {
	return "connection_requests"
}

func (r *ConnectionRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the request is still awaiting a doctor decision
func (r *ConnectionRequest) IsPending() bool {
	return r.Status == ConnectionStatusPending
}

// IsAccepted checks if the request was accepted
func (r *ConnectionRequest) IsAccepted() bool {
	return r.Status == ConnectionStatusAccepted
}

// IsRejected checks if the request was rejected
func (r *ConnectionRequest) IsRejected() bool {
	return r.Status == ConnectionStatusRejected
}

// ValidConnectionStatus reports whether s is one of the three statuses.
func ValidConnectionStatus(s string) bool {
	switch ConnectionStatus(s) {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusRejected:
		return true
	}
	return false
}
