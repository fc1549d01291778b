package usecase

import (
	"context"
	"errors"

	"telehealth-connect/internal/converter"
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
	"telehealth-connect/internal/domain/repository"
	"telehealth-connect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConnectionRequestNotFound = errors.New("connection request not found")
	ErrInvalidStatusFilter       = errors.New("status must be pending, accepted, rejected or all")
)

type ConnectionUsecase interface {
	Create(ctx context.Context, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, statusFilter string) ([]dto.DoctorConnectionResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.PatientAppointmentResponse, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateConnectionStatusRequest) error
}

type connectionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	connectionRepo repository.ConnectionRequestRepository
	userRepo       repository.UserRepository
}

func NewConnectionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	connectionRepo repository.ConnectionRequestRepository,
	userRepo repository.UserRepository,
) ConnectionUsecase {
	return &connectionUsecase{
		db:             db,
		log:            log,
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
	}
}

// Create records a patient's request to connect with a doctor. Every
// request starts pending; duplicates for the same pair and slot are
// allowed by design.
func (u *connectionUsecase) Create(ctx context.Context, req *dto.CreateConnectionRequest) (*dto.ConnectionResponse, error) {
	request := &entity.ConnectionRequest{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    entity.ConnectionStatusPending,
	}

	if err := u.connectionRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create connection request: %+v", err)
		return nil, err
	}

	metrics.ConnectionRequestsCreated.Inc()
	u.log.Infof("Connection request created: id=%s, doctor=%s, patient=%s", request.ID, req.DoctorID, req.PatientID)
	return converter.ConnectionToResponse(request), nil
}

// ListForDoctor returns the doctor's requests newest first, each enriched
// with the patient projection. "all" means pending plus accepted; rejected
// requests never show up under it.
func (u *connectionUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, statusFilter string) ([]dto.DoctorConnectionResponse, error) {
	var statuses []entity.ConnectionStatus
	switch statusFilter {
	case "all":
		statuses = []entity.ConnectionStatus{entity.ConnectionStatusPending, entity.ConnectionStatusAccepted}
	case "pending", "accepted", "rejected":
		statuses = []entity.ConnectionStatus{entity.ConnectionStatus(statusFilter)}
	default:
		return nil, ErrInvalidStatusFilter
	}

	requests, err := u.connectionRepo.FindByDoctorAndStatus(u.db.WithContext(ctx), doctorID, statuses)
	if err != nil {
		u.log.Warnf("Failed to find connection requests for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	patientIDs := make([]uuid.UUID, 0, len(requests))
	seen := make(map[uuid.UUID]bool)
	for _, request := range requests {
		if !seen[request.PatientID] {
			seen[request.PatientID] = true
			patientIDs = append(patientIDs, request.PatientID)
		}
	}

	patients, err := u.userRepo.FindByIDs(u.db.WithContext(ctx), patientIDs)
	if err != nil {
		u.log.Warnf("Failed to load patient details: %+v", err)
		return nil, err
	}

	patientsByID := make(map[uuid.UUID]*entity.User, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID] = &patients[i]
	}

	responses := make([]dto.DoctorConnectionResponse, len(requests))
	for i, request := range requests {
		responses[i] = converter.ConnectionToDoctorResponse(&requests[i], patientsByID[request.PatientID])
	}

	return responses, nil
}

// ListForPatient returns the patient's requests soonest first with the
// doctor's display name resolved per request.
func (u *connectionUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.PatientAppointmentResponse, error) {
	requests, err := u.connectionRepo.FindByPatient(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	doctorIDs := make([]uuid.UUID, 0, len(requests))
	seen := make(map[uuid.UUID]bool)
	for _, request := range requests {
		if !seen[request.DoctorID] {
			seen[request.DoctorID] = true
			doctorIDs = append(doctorIDs, request.DoctorID)
		}
	}

	doctors, err := u.userRepo.FindByIDs(u.db.WithContext(ctx), doctorIDs)
	if err != nil {
		u.log.Warnf("Failed to load doctor details: %+v", err)
		return nil, err
	}

	doctorsByID := make(map[uuid.UUID]*entity.User, len(doctors))
	for i := range doctors {
		doctorsByID[doctors[i].ID] = &doctors[i]
	}

	responses := make([]dto.PatientAppointmentResponse, len(requests))
	for i := range requests {
		responses[i] = converter.ConnectionToPatientAppointment(&requests[i], doctorsByID[requests[i].DoctorID])
	}

	return responses, nil
}

// UpdateStatus applies a doctor's decision to a single request. It touches
// no chat channel; channel creation happens lazily on first chat access.
func (u *connectionUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateConnectionStatusRequest) error {
	rows, err := u.connectionRepo.UpdateStatus(u.db.WithContext(ctx), req.RequestID, entity.ConnectionStatus(req.Status))
	if err != nil {
		u.log.Warnf("Failed to update connection request %s: %+v", req.RequestID, err)
		return err
	}
	if rows == 0 {
		return ErrConnectionRequestNotFound
	}

	metrics.ConnectionStatusUpdates.WithLabelValues(req.Status).Inc()
	u.log.Infof("Connection request updated: id=%s, status=%s", req.RequestID, req.Status)
	return nil
}
