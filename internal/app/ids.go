package app

import "github.com/google/uuid"

// isUUID reports whether id can name a stored row. Malformed ids are treated as unknown.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
