package usecase

import (
	"context"
	"testing"
	"time"

	"telehealth-connect/config"
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
	"telehealth-connect/internal/repository"
	"telehealth-connect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register and GetCurrentUser never touch Redis, so the tests leave the
// client nil. Login/Logout/RefreshToken need a live Redis and are covered
// by integration tests.
func newAuthUsecase(db *gorm.DB) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthUsecase(db, newTestLogger(), repository.NewUserRepository(), repository.NewDoctorProfileRepository(), repository.NewPatientProfileRepository(), jwtService, nil)
}

func TestAuthUsecase_RegisterPatient(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	registered, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "alice@test.com",
		Password: "secret123",
		Role:     entity.RolePatient,
		FullName: "Alice Wong",
		Age:      37,
		Gender:   "Female",
	})
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", registered.Email)
	assert.Equal(t, entity.RolePatient, registered.Role)

	var user entity.User
	assert.NoError(t, db.Preload("PatientProfile").First(&user, "email = ?", "alice@test.com").Error)
	assert.NotNil(t, user.PatientProfile)
	assert.Equal(t, 37, user.PatientProfile.Age)

	// Password must be stored hashed
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestAuthUsecase_RegisterDoctorWithAvailability(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	registered, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:      "doc@test.com",
		Password:   "secret123",
		Role:       entity.RoleDoctor,
		FullName:   "Dr. Chen",
		Speciality: "Neurology",
		Experience: 8,
		Availability: []dto.DayAvailability{
			{Day: "Tuesday", Slots: []dto.TimeSlot{{Start: "09:00", End: "12:00"}}},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, registered.Role)

	var profile entity.DoctorProfile
	assert.NoError(t, db.First(&profile, "user_id = ?", registered.ID).Error)
	assert.Equal(t, "Neurology", profile.Speciality)
	assert.Equal(t, 8, profile.Experience)
	assert.Len(t, profile.Availability, 1)
	assert.Equal(t, "Tuesday", profile.Availability[0].Day)
}

func TestAuthUsecase_RegisterDoctorMissingFields(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "incomplete@test.com",
		Password: "secret123",
		Role:     entity.RoleDoctor,
		FullName: "Dr. Incomplete",
	})
	assert.ErrorIs(t, err, ErrDoctorFieldsRequired)

	var count int64
	assert.NoError(t, db.Model(&entity.User{}).Where("email = ?", "incomplete@test.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	first := &dto.RegisterRequest{
		Email:    "dup@test.com",
		Password: "secret123",
		Role:     entity.RolePatient,
	}
	_, err := uc.Register(context.Background(), first)
	assert.NoError(t, err)

	_, err = uc.Register(context.Background(), first)
	assert.Error(t, err)
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	user := seedUser(t, db, entity.RolePatient, "current-user")

	current, err := uc.GetCurrentUser(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)
	assert.Equal(t, user.Email, current.Email)
}

func TestAuthUsecase_GetCurrentUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	_, err := uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
