package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the centralized authentication table. Role-specific
// attributes live on DoctorProfile / PatientProfile.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	FullName  string    `gorm:"type:varchar(255)" json:"fullName"`
	Image     string    `gorm:"type:varchar(255)" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctorProfile,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patientProfile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the UUID client-side so the entity also works on
// databases without gen_random_uuid (in-memory SQLite in tests).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Role constants
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// IsDoctor checks whether the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// IsPatient checks whether the user holds the patient role
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}
