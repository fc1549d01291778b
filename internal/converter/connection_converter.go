package converter

import (
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
)

// ConnectionToResponse converts a ConnectionRequest entity to its DTO
func ConnectionToResponse(request *entity.ConnectionRequest) *dto.ConnectionResponse {
	if request == nil {
		return nil
	}

	return &dto.ConnectionResponse{
		ID:        request.ID,
		DoctorID:  request.DoctorID,
		PatientID: request.PatientID,
		Date:      request.Date,
		Time:      request.Time,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
}

// ConnectionToDoctorResponse embeds the patient projection into a request.
// patient may be nil when the referenced user row is gone; every missing
// field falls back to a documented default so the doctor UI always has
// something to render.
func ConnectionToDoctorResponse(request *entity.ConnectionRequest, patient *entity.User) dto.DoctorConnectionResponse {
	summary := dto.PatientSummary{
		Name:           "Unknown Patient",
		Image:          "/placeholder.svg",
		Age:            0,
		Gender:         "Not specified",
		MedicalHistory: []string{},
	}

	if patient != nil {
		summary.ID = patient.ID
		summary.Email = patient.Email
		if patient.FullName != "" {
			summary.Name = patient.FullName
		}
		if patient.Image != "" {
			summary.Image = patient.Image
		}
		joined := patient.CreatedAt
		summary.JoinedDate = &joined

		if profile := patient.PatientProfile; profile != nil {
			summary.Age = profile.Age
			if profile.Gender != "" {
				summary.Gender = profile.Gender
			}
			if len(profile.MedicalHistory) > 0 {
				summary.MedicalHistory = []string(profile.MedicalHistory)
			}
			summary.LastVisit = profile.LastVisit
		}
	}

	return dto.DoctorConnectionResponse{
		ID:        request.ID,
		Status:    string(request.Status),
		Date:      request.Date,
		Time:      request.Time,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
		Patient:   summary,
	}
}

// ConnectionToPatientAppointment resolves the doctor display name for the
// patient-facing listing, defaulting to "Doctor" when the lookup failed.
func ConnectionToPatientAppointment(request *entity.ConnectionRequest, doctor *entity.User) dto.PatientAppointmentResponse {
	doctorName := "Doctor"
	if doctor != nil && doctor.FullName != "" {
		doctorName = doctor.FullName
	}

	return dto.PatientAppointmentResponse{
		ID:         request.ID,
		DoctorID:   request.DoctorID,
		PatientID:  request.PatientID,
		Date:       request.Date,
		Time:       request.Time,
		Status:     string(request.Status),
		DoctorName: doctorName,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}
