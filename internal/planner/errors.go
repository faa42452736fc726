package planner

import "errors"

// Sentinel error kinds for the planner run.
var (
	ErrLoadProfile    = errors.New("load profile")
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnknownFormat  = errors.New("unknown output format")
)
