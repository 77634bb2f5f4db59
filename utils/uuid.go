package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new random request identifier
func GenerateRequestID() string {
	return uuid.NewString()
}

// IsRequestID reports whether s looks like an identifier GenerateRequestID
// could have produced
func IsRequestID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
