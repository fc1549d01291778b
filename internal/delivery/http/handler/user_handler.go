package handler

import (
	"net/http"

	"telehealth-connect/internal/usecase"
	"telehealth-connect/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "User ID is required", nil)
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to fetch user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User fetched successfully", user)
}

// ListDoctors handles GET /doctors
func (h *UserHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors fetched successfully", doctors)
}
