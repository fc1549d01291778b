package handler

import (
	"encoding/json"
	"net/http"

	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/usecase"
	"telehealth-connect/pkg/response"
	"telehealth-connect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConnectionHandler struct {
	connectionUsecase usecase.ConnectionUsecase
	validator         *validator.CustomValidator
}

func NewConnectionHandler(connectionUsecase usecase.ConnectionUsecase, validator *validator.CustomValidator) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUsecase: connectionUsecase,
		validator:         validator,
	}
}

// CreateConnection handles POST /connections
func (h *ConnectionHandler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	connection, err := h.connectionUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send request")
		return
	}

	response.Success(w, http.StatusCreated, "Request sent successfully", connection)
}

// ListForDoctor handles GET /connections?doctorId=&status=
func (h *ConnectionHandler) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	doctorIDParam := r.URL.Query().Get("doctorId")
	if doctorIDParam == "" {
		response.Error(w, http.StatusBadRequest, "Missing doctorId", nil)
		return
	}

	doctorID, err := uuid.Parse(doctorIDParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctorId", nil)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		status = "pending"
	}

	requests, err := h.connectionUsecase.ListForDoctor(r.Context(), doctorID, status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatusFilter:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to fetch patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients fetched successfully", requests)
}

// UpdateStatus handles PUT /connections
func (h *ConnectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateConnectionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.connectionUsecase.UpdateStatus(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrConnectionRequestNotFound:
			response.NotFound(w, "No request updated")
		default:
			response.InternalServerError(w, "Failed to update request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Request "+req.Status, nil)
}

// ListForPatient handles GET /appointments/{patientId}. The response is a
// bare array, which is what the patient dashboard consumes.
func (h *ConnectionHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patientId", nil)
		return
	}

	appointments, err := h.connectionUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}
