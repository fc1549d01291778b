package handler

import (
	"encoding/json"
	"net/http"

	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/usecase"
	"telehealth-connect/pkg/response"
	"telehealth-connect/pkg/validator"
)

type AssistantHandler struct {
	assistantUsecase usecase.AssistantUsecase
	validator        *validator.CustomValidator
}

func NewAssistantHandler(assistantUsecase usecase.AssistantUsecase, validator *validator.CustomValidator) *AssistantHandler {
	return &AssistantHandler{
		assistantUsecase: assistantUsecase,
		validator:        validator,
	}
}

// CreateSession handles POST /assistant/session
func (h *AssistantHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.assistantUsecase.CreateSession(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to create AgentForce session")
		return
	}

	response.JSON(w, http.StatusOK, session)
}

// SendMessage handles POST /assistant/message. The upstream JSON is
// returned untouched.
func (h *AssistantHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.AssistantMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.assistantUsecase.SendMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send message to AgentForce")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(reply)
}

// Notify handles POST /notify
func (h *AssistantHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req dto.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.assistantUsecase.Notify(r.Context(), &req); err != nil {
		// Unset webhook URL and upstream failure both surface the same way;
		// the distinction only matters in the logs.
		response.InternalServerError(w, "Failed to send Slack notification")
		return
	}

	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
