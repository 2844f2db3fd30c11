package courses

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/filex"
	"github.com/mcoelho/eduterm/internal/models"
)

// seedCreator marks the bootstrap catalog entries.
const seedCreator = "Sistema"

// JSONRepository is a Repository backed by a single indented JSON file,
// with the same best-effort atomic write discipline as the user store.
type JSONRepository struct {
	path    string
	catalog map[string]*models.Course
}

// NewJSONRepository opens (or bootstraps) the catalog at path.
func NewJSONRepository(path string) (*JSONRepository, error) {
	r := &JSONRepository{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reads the catalog file. An absent file yields the two stock
// courses; malformed content is surfaced as common.ErrStorageCorrupt.
func (r *JSONRepository) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.catalog = bootstrapCatalog()
			return nil
		}
		return fmt.Errorf("read %s: %w", r.path, err)
	}

	catalog := map[string]*models.Course{}
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrStorageCorrupt, r.path, err)
	}
	for _, c := range catalog {
		c.Normalize()
	}
	r.catalog = catalog
	return nil
}

func (r *JSONRepository) Save() error {
	data, err := json.MarshalIndent(r.catalog, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal course catalog: %w", err)
	}
	return filex.WriteAtomic(r.path, data, 0o640)
}

func (r *JSONRepository) Get(id string) (*models.Course, error) {
	course, ok := r.catalog[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return course, nil
}

func (r *JSONRepository) All() map[string]*models.Course {
	return r.catalog
}

func (r *JSONRepository) SortedIDs() []string {
	ids := make([]string, 0, len(r.catalog))
	for id := range r.catalog {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}

func (r *JSONRepository) Create(course *models.Course) (string, error) {
	course.Normalize()
	id := strconv.Itoa(r.maxID() + 1)
	r.catalog[id] = course
	if err := r.Save(); err != nil {
		delete(r.catalog, id)
		return "", err
	}
	return id, nil
}

func (r *JSONRepository) maxID() int {
	max := 0
	for id := range r.catalog {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return max
}

func bootstrapCatalog() map[string]*models.Course {
	now := time.Now().Format(time.RFC3339)
	catalog := map[string]*models.Course{
		"1": {
			Name:      "Introdução à Programação",
			Duration:  "40h",
			CreatedBy: seedCreator,
			CreatedAt: now,
		},
		"2": {
			Name:      "Segurança da Informação",
			Duration:  "30h",
			CreatedBy: seedCreator,
			CreatedAt: now,
		},
	}
	for _, c := range catalog {
		c.Normalize()
	}
	return catalog
}
