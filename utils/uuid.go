package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateToken returns a new opaque bearer token
func GenerateToken() string {
	return uuid.New().String()
}
