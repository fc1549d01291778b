package converter

import (
	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/domain/entity"
)

// UserToDetailResponse projects a user for the directory read endpoint.
func UserToDetailResponse(user *entity.User) *dto.UserDetailResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserDetailResponse{
		ID:    user.ID,
		Name:  user.FullName,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
	}

	if profile := user.DoctorProfile; profile != nil {
		resp.Speciality = profile.Speciality
		resp.Experience = profile.Experience
	}

	return resp
}

// DoctorToResponse converts a doctor user with profile to its DTO
func DoctorToResponse(user *entity.User) dto.DoctorResponse {
	resp := dto.DoctorResponse{
		ID:           user.ID,
		Name:         user.FullName,
		Email:        user.Email,
		Image:        user.Image,
		Availability: []dto.DayAvailability{},
	}

	if profile := user.DoctorProfile; profile != nil {
		resp.Speciality = profile.Speciality
		resp.Experience = profile.Experience
		for _, day := range profile.Availability {
			slots := make([]dto.TimeSlot, len(day.Slots))
			for i, slot := range day.Slots {
				slots[i] = dto.TimeSlot{Start: slot.Start, End: slot.End}
			}
			resp.Availability = append(resp.Availability, dto.DayAvailability{
				Day:   day.Day,
				Slots: slots,
			})
		}
	}

	return resp
}

// DoctorsToResponses converts a slice of doctor users to DTOs
func DoctorsToResponses(users []entity.User) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(users))
	for i, user := range users {
		responses[i] = DoctorToResponse(&user)
	}
	return responses
}
