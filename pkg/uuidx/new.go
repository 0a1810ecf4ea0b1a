// Package uuidx generates the time-ordered UUIDs used to tag completion runs.
package uuidx

import "github.com/google/uuid"

// New returns a fresh version 7 UUID, panicking on the (practically
// impossible) generation failure.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh version 7 UUID in string form.
func NewString() string {
	return New().String()
}
