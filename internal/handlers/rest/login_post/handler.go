package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	authenticated, err := h.service.Authenticate(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, user.ErrInvalidCredentials.Error())
			return
		}
		h.log.With(logger.NewField("error", err)).Error("authenticate user")
		response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		return
	}

	err = response.JSON(w, http.StatusOK, dto.LoginResponse{
		Message:  "login successful",
		UserId:   authenticated.ID,
		Username: authenticated.Username,
		FullName: authenticated.FullName,
		Role:     authenticated.Role.String(),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
