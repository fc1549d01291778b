package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TimeSlot is a single start/end pair within a day, HH:MM strings.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability lists the slots a doctor offers on one weekday.
type DayAvailability struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

// Weekday names accepted in availability entries
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AvailabilityList is the JSONB column type for doctor availability
type AvailabilityList []DayAvailability

// Value returns json value, implements driver.Valuer interface
func (a AvailabilityList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan scans value into AvailabilityList, implements sql.Scanner interface
func (a *AvailabilityList) Scan(value interface{}) error {
	if value == nil {
		*a = nil
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

	var result []DayAvailability
	err := json.Unmarshal(bytes, &result)
	*a = AvailabilityList(result)
	return err
}

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID       uuid.UUID        `gorm:"type:uuid;primaryKey" json:"userId"`
	Speciality   string           `gorm:"type:varchar(100);not null;index" json:"speciality"`
	Experience   int              `gorm:"not null" json:"experience"`
	Availability AvailabilityList `gorm:"type:jsonb" json:"availability"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
