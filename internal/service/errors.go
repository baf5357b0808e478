package service

import "errors"

var (
	// ErrValidation marks input rejected before any remote call.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden means the resource belongs to a different seller.
	ErrForbidden = errors.New("not your resource")
	// ErrActionInFlight means the same order action is already running.
	ErrActionInFlight = errors.New("action already in flight")
)
