package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidUsername       = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidFullName       = errors.New("full name must be at most 100 characters")
	ErrInvalidRole           = errors.New("role must be admin or agent")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("insufficient role")
)
