// Package uuid generates the time-ordered identifiers used to correlate
// requests in logs.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. It falls back to a random UUIDv4 if the
// time-ordered variant cannot be generated.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// FromHeader returns header if it holds a valid UUID, otherwise a fresh one.
func FromHeader(header string) string {
	if header != "" && IsValid(header) {
		return header
	}
	return New()
}
