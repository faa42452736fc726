package service

import "errors"

// Sentinel error kinds for the session service.
var (
	ErrNoProfile      = errors.New("profile not set")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidWeather = errors.New("invalid weather")
	ErrUnknownTheme   = errors.New("unknown theme")
)
