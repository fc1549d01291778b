package usecase

import (
	"context"
	"testing"

	"telehealth-connect/internal/domain/entity"
	"telehealth-connect/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newUserUsecase(db *gorm.DB) UserUsecase {
	return NewUserUsecase(db, newTestLogger(), repository.NewUserRepository())
}

func TestUserUsecase_GetUser(t *testing.T) {
	db := setupTestDB(t)
	uc := newUserUsecase(db)

	doctor := seedUser(t, db, entity.RoleDoctor, "detail-doc")
	profile := entity.DoctorProfile{
		UserID:     doctor.ID,
		Speciality: "Oncology",
		Experience: 15,
	}
	assert.NoError(t, db.Create(&profile).Error)

	detail, err := uc.GetUser(context.Background(), doctor.ID)
	assert.NoError(t, err)
	assert.Equal(t, doctor.ID, detail.ID)
	assert.Equal(t, "detail-doc", detail.Name)
	assert.Equal(t, "Oncology", detail.Speciality)
	assert.Equal(t, 15, detail.Experience)
}

func TestUserUsecase_GetUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := newUserUsecase(db)

	_, err := uc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUsecase_ListDoctorsExcludesPatients(t *testing.T) {
	db := setupTestDB(t)
	uc := newUserUsecase(db)

	doctor := seedUser(t, db, entity.RoleDoctor, "listed-doc")
	seedUser(t, db, entity.RolePatient, "listed-pat")

	profile := entity.DoctorProfile{
		UserID:     doctor.ID,
		Speciality: "Cardiology",
		Experience: 10,
		Availability: entity.AvailabilityList{
			{Day: "Friday", Slots: []entity.TimeSlot{{Start: "10:00", End: "14:00"}}},
		},
	}
	assert.NoError(t, db.Create(&profile).Error)

	doctors, err := uc.ListDoctors(context.Background())
	assert.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, doctor.ID, doctors[0].ID)
	assert.Equal(t, "Cardiology", doctors[0].Speciality)
	assert.Len(t, doctors[0].Availability, 1)
}
