package packages_pending_get

import (
	"net/http"

	"parcel-service/internal/handlers/rest/response"
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
	packages, err := h.service.ListPendingPackages(r.Context())
	if err != nil {
		h.log.With(logger.NewField("error", err)).Error("list pending packages")
		response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		return
	}

	err = response.JSON(w, http.StatusOK, response.Packages(packages))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
