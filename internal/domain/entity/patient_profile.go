package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList is a JSONB column type for plain string arrays
// (medical history entries).
type StringList []string

// Value returns json value, implements driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan scans value into StringList, implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*s = StringList(result)
	return err
}

// PatientProfile represents patient-specific profile data. The connection
// workflow reads these fields for enrichment but never writes them after
// registration.
type PatientProfile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"userId"`
	Age            int        `gorm:"default:0" json:"age"`
	Gender         string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	MedicalHistory StringList `gorm:"type:jsonb" json:"medicalHistory"`
	LastVisit      *time.Time `json:"lastVisit,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
