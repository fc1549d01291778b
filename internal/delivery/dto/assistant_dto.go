package dto

// Request DTOs

// AssistantMessageRequest forwards one text turn to the external
// assistant. The optional names feed the scheduling notification when the
// reply reports a booked appointment.
type AssistantMessageRequest struct {
	SessionID   string `json:"sessionId" validate:"required"`
	Message     string `json:"message" validate:"required"`
	AccessToken string `json:"accessToken" validate:"required"`
	PatientName string `json:"patientName" validate:"omitempty"`
	DoctorName  string `json:"doctorName" validate:"omitempty"`
}

type NotifyRequest struct {
	PatientName     string `json:"patientName"`
	DoctorName      string `json:"doctorName"`
	AppointmentTime string `json:"appointmentTime"`
}

// Response DTOs

type AssistantSessionResponse struct {
	SessionID          string `json:"sessionId"`
	ExternalSessionKey string `json:"externalSessionKey"`
	AccessToken        string `json:"accessToken"`
}
