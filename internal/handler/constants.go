package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Version is reported by the health endpoint.
const Version = "1.0.0"

const (
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "An unexpected error occurred. Please try again later."
)
