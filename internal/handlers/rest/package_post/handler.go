package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
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
	actorID, err := request.ActorID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	var packageDTO dto.PackageCreate
	err = json.NewDecoder(r.Body).Decode(&packageDTO)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreatePackage(r.Context(), actorID, entities.PackageModify{
		TrackingNumber:     &packageDTO.TrackingNumber,
		DestinationAddress: &packageDTO.DestinationAddress,
		RecipientName:      &packageDTO.RecipientName,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, user.ErrInvalidUserID):
			response.Error(w, http.StatusNotFound, user.ErrUserNotFound.Error())
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, http.StatusForbidden, user.ErrForbidden.Error())
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			response.Error(w, http.StatusBadRequest, parcel.ErrMissingRequiredFields.Error())
		case errors.Is(err, parcel.ErrTrackingNumberTooLong):
			response.Error(w, http.StatusBadRequest, parcel.ErrTrackingNumberTooLong.Error())
		case errors.Is(err, parcel.ErrDestinationAddressTooLong):
			response.Error(w, http.StatusBadRequest, parcel.ErrDestinationAddressTooLong.Error())
		case errors.Is(err, parcel.ErrRecipientNameTooLong):
			response.Error(w, http.StatusBadRequest, parcel.ErrRecipientNameTooLong.Error())
		case errors.Is(err, parcel.ErrDuplicateTrackingNumber):
			response.Error(w, http.StatusBadRequest, parcel.ErrDuplicateTrackingNumber.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("create package")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, dto.PackageCreateResponse{
		Message:        "package created successfully",
		PackageId:      created.ID,
		TrackingNumber: created.TrackingNumber,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
