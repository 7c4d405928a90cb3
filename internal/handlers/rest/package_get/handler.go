package package_get

import (
	"errors"
	"net/http"

	"parcel-service/internal/handlers/rest/request"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.service.GetPackage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrPackageNotFound),
			errors.Is(err, parcel.ErrInvalidPackageID):
			response.Error(w, http.StatusNotFound, parcel.ErrPackageNotFound.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("get package")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, response.Package(*pkg))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
