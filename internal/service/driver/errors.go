package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidRating         = errors.New("invalid rating")

	ErrDriverNotFound = errors.New("driver not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotDriverRole  = errors.New("user is not a driver")
	ErrDriverExists   = errors.New("driver profile already exists")
)
