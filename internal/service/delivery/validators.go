package delivery

import (
	"math"
	"path"
	"strings"
	"unicode/utf8"

	"parcel-service/internal/entities"
)

// "uploads/" + имя файла должно уместиться в deliveries.photo_path VARCHAR(255).
const maxPhotoFileNameLength = 255 - len("uploads/")

func isValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

func isValidLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}

func isValidPhoto(photo entities.Photo) bool {
	return strings.TrimSpace(photo.FileName) != "" && len(photo.Content) > 0
}

// isValidPhotoName имя проверяется так же, как его обрежет хранилище фото.
func isValidPhotoName(fileName string) bool {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	switch base {
	case ".", "..", "/":
		return false
	}
	return utf8.RuneCountInString(base) <= maxPhotoFileNameLength
}

func validateSubmission(submission entities.DeliverySubmission) error {
	if submission.PackageID <= 0 {
		return ErrInvalidPackageID
	}
	if submission.AgentID <= 0 {
		return ErrInvalidAgentID
	}
	if !isValidLatitude(submission.Latitude) || !isValidLongitude(submission.Longitude) {
		return ErrInvalidCoordinates
	}
	if !isValidPhoto(submission.Photo) {
		return ErrMissingPhoto
	}
	if !isValidPhotoName(submission.Photo.FileName) {
		return ErrInvalidPhotoName
	}
	return nil
}
