package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupEntityTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(&User{}, &DoctorProfile{}, &PatientProfile{}, &ConnectionRequest{}, &Chat{}, &ChatMessage{})
	assert.NoError(t, err)

	return db
}

func TestUser_BeforeCreateAssignsID(t *testing.T) {
	db := setupEntityTestDB(t)

	user := User{
		Email:    "doc@test.com",
		Password: "hashed",
		Role:     RoleDoctor,
		FullName: "Dr. Test",
	}

	err := db.Create(&user).Error
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUser_EmailUnique(t *testing.T) {
	db := setupEntityTestDB(t)

	first := User{Email: "same@test.com", Password: "x", Role: RolePatient}
	assert.NoError(t, db.Create(&first).Error)

	second := User{Email: "same@test.com", Password: "y", Role: RolePatient}
	err := db.Create(&second).Error
	assert.Error(t, err)
}

func TestUser_RoleHelpers(t *testing.T) {
	doctor := User{Role: RoleDoctor}
	patient := User{Role: RolePatient}

	assert.True(t, doctor.IsDoctor())
	assert.False(t, doctor.IsPatient())
	assert.True(t, patient.IsPatient())
	assert.False(t, patient.IsDoctor())
}

func TestConnectionRequest_DefaultsToPending(t *testing.T) {
	db := setupEntityTestDB(t)

	request := ConnectionRequest{
		DoctorID:  uuid.New(),
		PatientID: uuid.New(),
		Date:      "2026-09-01",
		Time:      "10:00",
		Status:    ConnectionStatusPending,
	}

	assert.NoError(t, db.Create(&request).Error)
	assert.NotEqual(t, uuid.Nil, request.ID)

	var found ConnectionRequest
	assert.NoError(t, db.First(&found, "id = ?", request.ID).Error)
	assert.True(t, found.IsPending())
	assert.False(t, found.IsAccepted())
	assert.False(t, found.IsRejected())
}

func TestValidConnectionStatus(t *testing.T) {
	assert.True(t, ValidConnectionStatus("pending"))
	assert.True(t, ValidConnectionStatus("accepted"))
	assert.True(t, ValidConnectionStatus("rejected"))
	assert.False(t, ValidConnectionStatus("cancelled"))
	assert.False(t, ValidConnectionStatus(""))
}

func TestValidSender(t *testing.T) {
	assert.True(t, ValidSender(SenderDoctor))
	assert.True(t, ValidSender(SenderPatient))
	assert.False(t, ValidSender("admin"))
}

func TestChat_UniquePairIndex(t *testing.T) {
	db := setupEntityTestDB(t)

	doctorID := uuid.New()
	patientID := uuid.New()

	first := Chat{DoctorID: doctorID, PatientID: patientID}
	assert.NoError(t, db.Create(&first).Error)

	second := Chat{DoctorID: doctorID, PatientID: patientID}
	err := db.Create(&second).Error
	assert.Error(t, err)

	// Same doctor with a different patient is a separate channel
	third := Chat{DoctorID: doctorID, PatientID: uuid.New()}
	assert.NoError(t, db.Create(&third).Error)
}

func TestPatientProfile_MedicalHistoryRoundTrip(t *testing.T) {
	db := setupEntityTestDB(t)

	user := User{Email: "patient@test.com", Password: "x", Role: RolePatient}
	assert.NoError(t, db.Create(&user).Error)

	profile := PatientProfile{
		UserID:         user.ID,
		Age:            42,
		Gender:         "Female",
		MedicalHistory: StringList{"Hypertension", "Asthma"},
	}
	assert.NoError(t, db.Create(&profile).Error)

	var found PatientProfile
	assert.NoError(t, db.First(&found, "user_id = ?", user.ID).Error)
	assert.Equal(t, 42, found.Age)
	assert.Equal(t, StringList{"Hypertension", "Asthma"}, found.MedicalHistory)
}

func TestDoctorProfile_AvailabilityRoundTrip(t *testing.T) {
	db := setupEntityTestDB(t)

	user := User{Email: "doctor@test.com", Password: "x", Role: RoleDoctor}
	assert.NoError(t, db.Create(&user).Error)

	profile := DoctorProfile{
		UserID:     user.ID,
		Speciality: "Cardiology",
		Experience: 12,
		Availability: AvailabilityList{
			{Day: "Monday", Slots: []TimeSlot{{Start: "09:00", End: "12:00"}}},
			{Day: "Wednesday", Slots: []TimeSlot{{Start: "14:00", End: "17:00"}}},
		},
	}
	assert.NoError(t, db.Create(&profile).Error)

	var found DoctorProfile
	assert.NoError(t, db.First(&found, "user_id = ?", user.ID).Error)
	assert.Len(t, found.Availability, 2)
	assert.Equal(t, "Monday", found.Availability[0].Day)
	assert.Equal(t, "09:00", found.Availability[0].Slots[0].Start)
}
