package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/filex"
	"github.com/mcoelho/eduterm/internal/models"
)

// Bootstrap account written when no store file exists yet.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Admin@123"
	defaultAdminEmail    = "admin@escola.com"
	defaultAdminAge      = 30
)

// JSONRepository is a Repository backed by a single indented JSON file.
//
// Writes replace the whole file via a temp-file rename. A crash mid-write
// can still leave the previous state in place but not a half-written one;
// there is no fsync and no multi-file transaction.
type JSONRepository struct {
	path     string
	accounts map[string]*models.UserAccount
}

// NewJSONRepository opens (or bootstraps) the store at path.
func NewJSONRepository(path string) (*JSONRepository, error) {
	r := &JSONRepository{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reads the store file. An absent file yields the bootstrap mapping
// with the single default admin; malformed content is surfaced as
// common.ErrStorageCorrupt rather than silently discarded.
func (r *JSONRepository) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.accounts = bootstrapAccounts()
			return nil
		}
		return fmt.Errorf("read %s: %w", r.path, err)
	}

	accounts := map[string]*models.UserAccount{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrStorageCorrupt, r.path, err)
	}
	for _, a := range accounts {
		a.Normalize()
	}
	r.accounts = accounts
	return nil
}

// Save serializes the full mapping with human-readable indentation.
func (r *JSONRepository) Save() error {
	data, err := json.MarshalIndent(r.accounts, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal user store: %w", err)
	}
	return filex.WriteAtomic(r.path, data, 0o640)
}

func (r *JSONRepository) Get(username string) (*models.UserAccount, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return account, nil
}

func (r *JSONRepository) All() map[string]*models.UserAccount {
	return r.accounts
}

func (r *JSONRepository) Create(username string, account *models.UserAccount) error {
	if _, ok := r.accounts[username]; ok {
		return common.ErrAlreadyExists
	}
	account.Normalize()
	r.accounts[username] = account
	return r.Save()
}

func (r *JSONRepository) Delete(username string) error {
	if _, ok := r.accounts[username]; !ok {
		return common.ErrNotFound
	}
	delete(r.accounts, username)
	return r.Save()
}

func bootstrapAccounts() map[string]*models.UserAccount {
	admin := &models.UserAccount{
		Password:     DefaultAdminPassword,
		Email:        defaultAdminEmail,
		Age:          defaultAdminAge,
		IsAdmin:      true,
		RegisteredAt: time.Now().Format(time.RFC3339),
	}
	admin.Normalize()
	return map[string]*models.UserAccount{DefaultAdminUsername: admin}
}
