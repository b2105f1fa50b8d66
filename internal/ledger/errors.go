package ledger

import (
	"errors"
	"strings"
)

var (
	// ErrTradeNotFound is returned when no trade has the requested id.
	ErrTradeNotFound = errors.New("trade not found")
	// ErrCorruptData is returned when a stored value cannot be decoded.
	ErrCorruptData = errors.New("stored data is corrupt")
)

// ValidationError reports why a trade could not be saved.
type ValidationError struct {
	// Fields lists the offending input fields by their JSON names.
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return e.Reason + ": " + strings.Join(e.Fields, ", ")
}
