package parcel

import (
	"strings"
	"unicode/utf8"

	"parcel-service/internal/entities"
)

// Совпадают с VARCHAR-колонками таблицы packages.
const (
	maxTrackingNumberLength     = 50
	maxDestinationAddressLength = 255
	maxRecipientNameLength      = 100
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func tooLong(s *string, limit int) bool {
	return utf8.RuneCountInString(*s) > limit
}

func validatePackageModify(packageModify entities.PackageModify) error {
	if isBlank(packageModify.TrackingNumber) ||
		isBlank(packageModify.DestinationAddress) ||
		isBlank(packageModify.RecipientName) {
		return ErrMissingRequiredFields
	}

	switch {
	case tooLong(packageModify.TrackingNumber, maxTrackingNumberLength):
		return ErrTrackingNumberTooLong
	case tooLong(packageModify.DestinationAddress, maxDestinationAddressLength):
		return ErrDestinationAddressTooLong
	case tooLong(packageModify.RecipientName, maxRecipientNameLength):
		return ErrRecipientNameTooLong
	}
	return nil
}
