package package_delete

import (
	"errors"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/request"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/parcel"
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
	id, err := request.PathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	actorID, err := request.ActorID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.service.DeletePackage(r.Context(), actorID, id)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, user.ErrInvalidUserID):
			response.Error(w, http.StatusNotFound, user.ErrUserNotFound.Error())
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, http.StatusForbidden, user.ErrForbidden.Error())
		case errors.Is(err, parcel.ErrPackageNotFound),
			errors.Is(err, parcel.ErrInvalidPackageID):
			response.Error(w, http.StatusNotFound, parcel.ErrPackageNotFound.Error())
		case errors.Is(err, parcel.ErrPackageNotPending):
			response.Error(w, http.StatusBadRequest, parcel.ErrPackageNotPending.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("delete package")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, dto.MessageResponse{
		Message: "package deleted successfully",
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
