package domain

import "errors"

// Domain errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrWeatherUnavailable = errors.New("weather service unavailable")
	ErrAdvisorUnavailable = errors.New("advisor service unavailable")
	ErrEmptyImage         = errors.New("image data is empty")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrInvalidLandSize    = errors.New("land size must be positive")
)
