package usecase

import (
	"io"
	"testing"

	"telehealth-connect/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.DoctorProfile{},
		&entity.PatientProfile{},
		&entity.ConnectionRequest{},
		&entity.Chat{},
		&entity.ChatMessage{},
	)
	assert.NoError(t, err)

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, db *gorm.DB, role, fullName string) *entity.User {
	user := &entity.User{
		Email:    fullName + "@test.com",
		Password: "hashed",
		Role:     role,
		FullName: fullName,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}
