package prefs

import (
	"fmt"

	"github.com/google/uuid"
)

// Name formats a key, for numbered entries such as Name("File%d", i).
func Name(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// NewUUID returns a new random UUID in its canonical text form.
func NewUUID() string {
	return uuid.NewString()
}
