package deliveries_export_get

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"parcel-service/internal/handlers/rest/request"
	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/pkg/xlsx_report"
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

	records, err := h.service.DeliveriesAll(r.Context(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound),
			errors.Is(err, user.ErrInvalidUserID):
			response.Error(w, http.StatusNotFound, user.ErrUserNotFound.Error())
		case errors.Is(err, user.ErrForbidden):
			response.Error(w, http.StatusForbidden, user.ErrForbidden.Error())
		default:
			h.log.With(logger.NewField("error", err)).Error("list deliveries for export")
			response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		}
		return
	}

	// книга собирается в буфер целиком, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := xlsx_report.WriteDeliveries(&buf, records); err != nil {
		h.log.With(logger.NewField("error", err)).Error("build deliveries workbook")
		response.Error(w, http.StatusInternalServerError, response.InternalErrorDetail)
		return
	}

	fileName := fmt.Sprintf("deliveries_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", xlsx_report.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write xlsx response")
	}
}
