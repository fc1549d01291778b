package handler

import (
	"encoding/json"
	"net/http"

	"telehealth-connect/internal/delivery/dto"
	"telehealth-connect/internal/usecase"
	"telehealth-connect/pkg/response"
	"telehealth-connect/pkg/validator"

	"github.com/google/uuid"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.CustomValidator
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, validator *validator.CustomValidator) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
	}
}

// GetChat handles GET /chat?doctorId=&patientId= with find-or-create
// semantics.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	doctorIDParam := r.URL.Query().Get("doctorId")
	patientIDParam := r.URL.Query().Get("patientId")

	if doctorIDParam == "" || patientIDParam == "" {
		response.Error(w, http.StatusBadRequest, "Missing doctorId or patientId", nil)
		return
	}

	doctorID, err := uuid.Parse(doctorIDParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctorId", nil)
		return
	}

	patientID, err := uuid.Parse(patientIDParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patientId", nil)
		return
	}

	chat, err := h.chatUsecase.GetOrCreateChat(r.Context(), doctorID, patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch chat")
		return
	}

	response.Success(w, http.StatusOK, "Chat fetched successfully", chat)
}

// SendMessage handles POST /chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.chatUsecase.AppendMessage(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}
