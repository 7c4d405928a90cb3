package response

import (
	"encoding/json"
	"net/http"

	"parcel-service/internal/generated/dto"
)

const InternalErrorDetail = "internal server error"

// JSON ошибку кодирования возвращает вызывающему: заголовки к этому моменту уже отправлены.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, detail string) {
	_ = JSON(w, status, dto.ErrorResponse{Detail: detail})
}
