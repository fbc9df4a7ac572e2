package entity

import (
	"errors"
	"fmt"
)

// Domain errors for content operations
var (
	// Store errors
	ErrDuplicateID = errors.New("entity id already exists")

	// Scheduling errors. Every refinement wraps ErrInvalidScheduleRequest,
	// so callers can match either the kind or the specific reason.
	ErrInvalidScheduleRequest = errors.New("invalid schedule request")
	ErrUnknownAccount         = fmt.Errorf("%w: unknown account", ErrInvalidScheduleRequest)
	ErrAccountNotConnected    = fmt.Errorf("%w: account is not connected", ErrInvalidScheduleRequest)
	ErrInvalidScheduledFor    = fmt.Errorf("%w: unparsable scheduled time", ErrInvalidScheduleRequest)
	ErrInvalidPlatform        = fmt.Errorf("%w: unknown platform", ErrInvalidScheduleRequest)
	ErrInvalidMediaType       = fmt.Errorf("%w: unknown media type", ErrInvalidScheduleRequest)

	// Idea errors
	ErrIdeaNotFound = errors.New("post idea not found")
	ErrInvalidMood  = errors.New("invalid mood")

	// Seed errors
	ErrInvalidSeed = errors.New("invalid seed data")
)
