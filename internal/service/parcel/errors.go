package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")

	ErrTrackingNumberTooLong     = errors.New("tracking number must be at most 50 characters")
	ErrDestinationAddressTooLong = errors.New("destination address must be at most 255 characters")
	ErrRecipientNameTooLong      = errors.New("recipient name must be at most 100 characters")

	ErrPackageNotFound         = errors.New("package not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	ErrPackageNotPending       = errors.New("package is not pending")
)
