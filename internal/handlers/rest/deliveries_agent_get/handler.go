package deliveries_agent_get

import (
	"errors"
	"net/http"

	"parcel-service/internal/handlers/rest/request"
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
	agentID, err := request.PathID(r, "agent_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.DeliveriesForAgent(r.Context(), agentID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, user.ErrInvalidUserID):
			response.Error(w, http.StatusNotFound, user.ErrUserNotFound.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("list agent deliveries")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, response.Deliveries(records))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
