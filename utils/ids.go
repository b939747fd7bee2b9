package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new conversation identifier
func GenerateID() string {
	return uuid.New().String()
}

// IsValidID reports whether id could have come from GenerateID
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
