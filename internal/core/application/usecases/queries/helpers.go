package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ErrEmailIsRequired rejects queries that are scoped to a user but were
// built without an email.
var ErrEmailIsRequired = errors.New("email is required")

// scanUUID converts a raw database uuid value into the domain identifier.
func scanUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
