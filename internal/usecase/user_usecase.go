package usecase

import (
	"context"

	"telehealth-connect/internal/converter"
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, error)
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserDetailResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToDetailResponse(user), nil
}

func (u *userUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.userRepo.FindDoctors(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return converter.DoctorsToResponses(doctors), nil
}
