// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered account that can authenticate against the API.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier; unique across accounts.
	Name         string    // The account holder's display name.
	PasswordHash string    // The encoded password record: algo$rounds$saltLen$salt$digest. Opaque to everything but the hasher.
	Active       bool      // Inactive accounts cannot authenticate.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
