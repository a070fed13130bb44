package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrCapacityExceeded  = errors.New("not enough seats left for this departure")
	ErrInvalidTimeLabel  = errors.New("departure time is not offered by this vehicle")
	ErrInvalidTransition = errors.New("booking status does not permit this operation")
	ErrAlreadyTerminal   = errors.New("booking is already cancelled or completed")
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated     = errors.New("booking has already been rated")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
