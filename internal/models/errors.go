package models

import "errors"

// Custom errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrBetNotFound     = errors.New("bet not found")
)
