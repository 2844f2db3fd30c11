package users

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/models"
)

func newRepo(t *testing.T) *JSONRepository {
	t.Helper()
	r, err := NewJSONRepository(filepath.Join(t.TempDir(), "dados_usuarios.json"))
	require.NoError(t, err)
	return r
}

func TestNewJSONRepository_BootstrapsDefaultAdmin(t *testing.T) {
	r := newRepo(t)

	admin, err := r.Get(DefaultAdminUsername)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, DefaultAdminPassword, admin.Password)
	assert.Empty(t, admin.EnrolledCourses)
	assert.Len(t, r.All(), 1)

	// Bootstrap lives in memory only until the first Save.
	_, err = os.Stat(r.path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJSONRepository_SaveReloadRoundTrip(t *testing.T) {
	r := newRepo(t)

	alice := &models.UserAccount{
		Password:        "Alice@123",
		Email:           "alice@escola.com",
		Age:             21,
		EnrolledCourses: []string{"1"},
		CompletedModules: map[string][]string{
			"1": {"Lógica"},
		},
	}
	require.NoError(t, r.Create("alice123", alice))

	r2, err := NewJSONRepository(r.path)
	require.NoError(t, err)

	got, err := r2.Get("alice123")
	require.NoError(t, err)
	assert.Equal(t, "Alice@123", got.Password)
	assert.Equal(t, []string{"1"}, got.EnrolledCourses)
	assert.Equal(t, []string{"Lógica"}, got.CompletedModules["1"])
	// Optional collections are normalized on load.
	assert.NotNil(t, got.Certificates)
}

func TestJSONRepository_CreateDuplicateLeavesStoreUnchanged(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.Create("bob_2024", &models.UserAccount{Password: "Bob@1234"}))

	err := r.Create("bob_2024", &models.UserAccount{Password: "Other@123"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	got, err := r.Get("bob_2024")
	require.NoError(t, err)
	assert.Equal(t, "Bob@1234", got.Password)
}

func TestJSONRepository_GetAndDeleteUnknown(t *testing.T) {
	r := newRepo(t)

	_, err := r.Get("ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, r.Delete("ghost"), common.ErrNotFound)
}

func TestJSONRepository_DeletePersists(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.Create("carol_77", &models.UserAccount{Password: "Carol@12"}))
	require.NoError(t, r.Delete("carol_77"))

	r2, err := NewJSONRepository(r.path)
	require.NoError(t, err)
	_, err = r2.Get("carol_77")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestJSONRepository_CorruptFileSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados_usuarios.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o640))

	_, err := NewJSONRepository(path)
	assert.ErrorIs(t, err, common.ErrStorageCorrupt)
}

func TestJSONRepository_ReloadPicksUpExternalChanges(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.Save())

	// Simulate an out-of-band edit of the store file.
	other, err := NewJSONRepository(r.path)
	require.NoError(t, err)
	require.NoError(t, other.Create("dave_001", &models.UserAccount{Password: "Dave@123"}))

	_, err = r.Get("dave_001")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.Reload())
	_, err = r.Get("dave_001")
	assert.NoError(t, err)
}
