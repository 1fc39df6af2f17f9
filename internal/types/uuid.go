package types

import (
	"strings"

	"github.com/google/uuid"
	ierr "github.com/listingdesk/backoffice/internal/errors"
	"github.com/oklog/ulid/v2"
)

// GenerateID returns a new time ordered record identifier
func GenerateID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// GenerateUUID returns a k-sortable unique identifier for requests and
// transactions, ex 01J9Z3QJ6X4M2V8K5T7N0P1R2S
func GenerateUUID() string {
	return ulid.Make().String()
}

// ParseIdentifier parses a caller supplied identifier literal
func ParseIdentifier(raw string) (uuid.UUID, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "'")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ierr.WithError(err).
			WithHintf("%q is not a valid identifier", raw).
			Mark(ierr.ErrInvalidIdentifier)
	}
	return id, nil
}

// ParseOptionalIdentifier parses raw and returns nil when it is empty or malformed
func ParseOptionalIdentifier(raw string) *uuid.UUID {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	id, err := ParseIdentifier(raw)
	if err != nil {
		return nil
	}
	return &id
}
