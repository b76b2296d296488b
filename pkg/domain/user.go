package domain

import "github.com/google/uuid"

// UserID identifies a parent account. It wraps uuid.UUID for type safety.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (u UserID) String() string { return uuid.UUID(u).String() }
