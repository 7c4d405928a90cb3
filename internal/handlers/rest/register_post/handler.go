package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/user"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userModify := entities.UserModify{
		Username: &registerDTO.Username,
		Password: &registerDTO.Password,
		FullName: registerDTO.FullName,
	}
	if registerDTO.Role != nil {
		role := entities.UserRole(*registerDTO.Role)
		userModify.Role = &role
	}

	created, err := h.service.Register(r.Context(), userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields):
			response.Error(w, http.StatusBadRequest, user.ErrMissingRequiredFields.Error())
		case errors.Is(err, user.ErrInvalidUsername):
			response.Error(w, http.StatusBadRequest, user.ErrInvalidUsername.Error())
		case errors.Is(err, user.ErrInvalidPassword):
			response.Error(w, http.StatusBadRequest, user.ErrInvalidPassword.Error())
		case errors.Is(err, user.ErrInvalidFullName):
			response.Error(w, http.StatusBadRequest, user.ErrInvalidFullName.Error())
		case errors.Is(err, user.ErrInvalidRole):
			response.Error(w, http.StatusBadRequest, user.ErrInvalidRole.Error())
		case errors.Is(err, user.ErrDuplicateUsername):
			response.Error(w, http.StatusBadRequest, user.ErrDuplicateUsername.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("register user")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, dto.RegisterResponse{
		Message:  "user registered successfully",
		UserId:   created.ID,
		Username: created.Username,
		Role:     created.Role.String(),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
