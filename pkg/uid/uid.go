package uid

import "github.com/google/uuid"

// New generates a random (version 4) identifier.
func New() string {
	return uuid.NewString()
}

// IsValid checks if a string is a valid UUID.
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// OrNew returns id when it is a well-formed UUID, otherwise a fresh one.
// Client supplied identifiers end up in logs, so anything else is replaced.
func OrNew(id string) string {
	if id != "" && IsValid(id) {
		return id
	}
	return New()
}
