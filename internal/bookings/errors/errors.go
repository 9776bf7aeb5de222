package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrTimeConflict = errors.New("booking time conflicts with existing booking")

	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
