package domain

import "github.com/google/uuid"

// ParseID validates the external string form of an aggregate identifier
// before it reaches any storage call. Malformed identifiers fail here with a
// ValidationErr and never produce a query.
func ParseID(entity EntityType, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, NewValidationErr(entity, "id cannot be empty")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationErr(entity, "id must be a valid UUID")
	}
	return id, nil
}
