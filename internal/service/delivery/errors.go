package delivery

import "errors"

var (
	ErrInvalidPackageID   = errors.New("invalid package id")
	ErrInvalidAgentID     = errors.New("invalid agent id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrMissingPhoto       = errors.New("photo is required")
	ErrInvalidPhotoName   = errors.New("photo file name must be a plain name of at most 247 characters")

	ErrAlreadyDelivered = errors.New("package already delivered")
	ErrPersistence      = errors.New("failed to persist delivery")
)
