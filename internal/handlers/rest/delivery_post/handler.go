package delivery_post

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/delivery"
	"parcel-service/internal/service/parcel"
	"parcel-service/internal/service/user"
	"parcel-service/pkg/logger"
)

const (
	fieldPackageID = "package_id"
	fieldAgentID   = "agent_id"
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldNotes     = "notes"
	fieldFile      = "file"

	// части формы сверх этого лимита multipart сбрасывает во временные файлы
	maxMemory = 1 << 20
)

type Handler struct {
	log            handlerLogger
	service        Service
	maxUploadBytes int64
}

func New(log handlerLogger, service Service, maxUploadBytes int64) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		if r.ContentLength > h.maxUploadBytes {
			response.Error(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		// тело без Content-Length ограничиваем при чтении
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	err := r.ParseMultipartForm(maxMemory)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.With(logger.NewField("error", err)).Warn("remove multipart temp files")
		}
	}()

	submission, err := h.parseSubmission(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	receipt, err := h.service.RecordDelivery(r.Context(), submission)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidCoordinates):
			response.Error(w, http.StatusBadRequest, delivery.ErrInvalidCoordinates.Error())
		case errors.Is(err, delivery.ErrMissingPhoto):
			response.Error(w, http.StatusBadRequest, delivery.ErrMissingPhoto.Error())
		case errors.Is(err, delivery.ErrInvalidPhotoName):
			response.Error(w, http.StatusBadRequest, delivery.ErrInvalidPhotoName.Error())
		case errors.Is(err, delivery.ErrAlreadyDelivered):
			response.Error(w, http.StatusBadRequest, delivery.ErrAlreadyDelivered.Error())
		case errors.Is(err, parcel.ErrPackageNotFound),
			errors.Is(err, delivery.ErrInvalidPackageID):
			response.Error(w, http.StatusNotFound, parcel.ErrPackageNotFound.Error())
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, delivery.ErrInvalidAgentID):
			response.Error(w, http.StatusNotFound, user.ErrUserNotFound.Error())
		case errors.Is(err, delivery.ErrPersistence):
			h.log.With(logger.NewField("error", err)).Error("record delivery")
			response.Error(w, http.StatusInternalServerError, delivery.ErrPersistence.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("record delivery")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	err = response.JSON(w, http.StatusOK, dto.DeliveryCreateResponse{
		Message:    "delivery recorded successfully",
		DeliveryId: receipt.DeliveryID,
		Address:    receipt.Address,
		PhotoPath:  receipt.PhotoPath,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) parseSubmission(r *http.Request) (entities.DeliverySubmission, error) {
	packageID, err := strconv.ParseInt(r.FormValue(fieldPackageID), 10, 64)
	if err != nil {
		return entities.DeliverySubmission{}, invalidField(fieldPackageID)
	}

	agentID, err := strconv.ParseInt(r.FormValue(fieldAgentID), 10, 64)
	if err != nil {
		return entities.DeliverySubmission{}, invalidField(fieldAgentID)
	}

	latitude, err := strconv.ParseFloat(r.FormValue(fieldLatitude), 64)
	if err != nil {
		return entities.DeliverySubmission{}, invalidField(fieldLatitude)
	}

	longitude, err := strconv.ParseFloat(r.FormValue(fieldLongitude), 64)
	if err != nil {
		return entities.DeliverySubmission{}, invalidField(fieldLongitude)
	}

	file, fileHeader, err := r.FormFile(fieldFile)
	if err != nil {
		return entities.DeliverySubmission{}, delivery.ErrMissingPhoto
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return entities.DeliverySubmission{}, fmt.Errorf("read %s: %w", fieldFile, err)
	}

	return entities.DeliverySubmission{
		PackageID: packageID,
		AgentID:   agentID,
		Latitude:  latitude,
		Longitude: longitude,
		Notes:     r.FormValue(fieldNotes),
		Photo: entities.Photo{
			FileName: fileHeader.Filename,
			Content:  content,
		},
	}, nil
}

func invalidField(name string) error {
	return fmt.Errorf("invalid form field: %s", name)
}
