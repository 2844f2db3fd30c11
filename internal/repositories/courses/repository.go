// Package courses implements the course catalog: the persisted mapping of
// course id to course definition.
package courses

import "github.com/mcoelho/eduterm/internal/models"

// Repository defines the operations of the course catalog.
//
// The certificate core only reads from it; the administrative service also
// creates and edits entries. Ids are decimal strings assigned as
// max existing + 1.
type Repository interface {
	// Reload re-reads the backing store, discarding the in-memory cache.
	Reload() error

	// Save persists the full catalog.
	Save() error

	// Get returns the course for id or common.ErrNotFound.
	Get(id string) (*models.Course, error)

	// All returns the live mapping of course id to course.
	All() map[string]*models.Course

	// SortedIDs returns all course ids in ascending numeric order.
	SortedIDs() []string

	// Create inserts a new course under the next free id and persists the
	// catalog. The assigned id is returned.
	Create(course *models.Course) (string, error)
}
