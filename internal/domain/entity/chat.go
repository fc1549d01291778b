package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message sender constants
const (
	SenderDoctor  = "doctor"
	SenderPatient = "patient"
)

// Chat is the message log for one doctor-patient pair. The composite
// unique index makes concurrent first-contact creation collide instead of
// yielding two channels for the same pair; callers treat that collision as
// "return existing".
type Chat struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chats_doctor_patient" json:"doctorId"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chats_doctor_patient" json:"patientId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"lastUpdated"`

	// Relationships
	Messages []ChatMessage `gorm:"foreignKey:ChatID" json:"messages"`
}

func (Chat) TableName() string {
	return "chats"
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ChatMessage is one appended message. The autoincrement primary key is
// the only ordering key: insertion order is message order.
type ChatMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Sender    string    `gorm:"type:varchar(10);not null" json:"sender"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ValidSender reports whether s is an allowed message sender.
func ValidSender(s string) bool {
	return s == SenderDoctor || s == SenderPatient
}
