package domain

import "github.com/google/uuid"

// newID returns a fresh identifier for an entity owned by a draft.
var newID = func() string {
	return uuid.NewString()
}
