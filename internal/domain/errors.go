package domain

import "errors"

var (
	ErrDuplicateDocument       = errors.New("passenger with this document already exists")
	ErrNotFound                = errors.New("passenger not found")
	ErrNoSeatAvailable         = errors.New("no seat available in the selected class")
	ErrSeatOutOfClassRange     = errors.New("seat does not belong to the passenger's class")
	ErrSeatUnavailable         = errors.New("seat is not available")
	ErrInvalidDate             = errors.New("invalid date")
	ErrInvalidTime             = errors.New("invalid time")
	ErrInvalidTemporalOrdering = errors.New("date is on the wrong side of now")
	ErrEmptyDocument           = errors.New("document is required")
	ErrInvalidGender           = errors.New("gender must be F, M or O")
	ErrUnknownFlightType       = errors.New("unknown flight type")
	ErrUnknownTicketClass      = errors.New("unknown ticket class")
)
