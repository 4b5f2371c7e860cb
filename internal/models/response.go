package models

import (
	"time"
)

// Response is the uniform envelope wrapping every operation's result.
// Success == false implies Data is nil.
type Response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// OK wraps data in a success envelope.
func OK(message string, data any) Response {
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Fail builds a failure envelope. Expected failures (not found, validation)
// resolve here instead of propagating as errors.
func Fail(message string) Response {
	return Response{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
}
