// Package users implements the credential store: the persisted mapping of
// username to account record.
package users

import "github.com/mcoelho/eduterm/internal/models"

// Repository defines the operations the credential store exposes.
//
// The store owns all mutable account state. It does not check roles;
// authorization happens in the services calling it. Username uniqueness is
// enforced at creation time only; Create never silently overwrites.
type Repository interface {
	// Reload re-reads the backing store, discarding the in-memory cache.
	// Callers invoke it when freshness matters (e.g. before login).
	Reload() error

	// Save persists the full mapping, overwriting the backing store.
	Save() error

	// Get returns the account for username or common.ErrNotFound.
	Get(username string) (*models.UserAccount, error)

	// All returns the live mapping of username to account.
	All() map[string]*models.UserAccount

	// Create inserts a new account or fails with common.ErrAlreadyExists,
	// leaving the store unchanged. The store is persisted on success.
	Create(username string, account *models.UserAccount) error

	// Delete removes the account or fails with common.ErrNotFound.
	// The store is persisted on success.
	Delete(username string) error
}
