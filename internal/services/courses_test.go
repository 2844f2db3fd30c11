package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoelho/eduterm/internal/common"
)

func TestCourseService_CreateAndEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.adminSession(t)

	t.Run("requires admin", func(t *testing.T) {
		_, err := f.courseAdmin.Create(ctx, nil, "Redes", "20h")
		assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		_, err := f.courseAdmin.Create(ctx, admin, "", "20h")
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("creates with next id", func(t *testing.T) {
		id, err := f.courseAdmin.Create(ctx, admin, "Redes", "20h")
		require.NoError(t, err)
		assert.Equal(t, "3", id)

		c, err := f.courses.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "Redes", c.Name)
		assert.Equal(t, admin.Username, c.CreatedBy)
	})

	t.Run("edit keeps omitted fields", func(t *testing.T) {
		require.NoError(t, f.courseAdmin.Edit(ctx, admin, "3", "", "25h"))

		c, err := f.courses.Get("3")
		require.NoError(t, err)
		assert.Equal(t, "Redes", c.Name)
		assert.Equal(t, "25h", c.Duration)
		assert.Equal(t, admin.Username, c.EditedBy)
		assert.NotEmpty(t, c.EditedAt)
	})

	t.Run("edit of unknown course", func(t *testing.T) {
		assert.ErrorIs(t, f.courseAdmin.Edit(ctx, admin, "42", "X", ""), common.ErrNotFound)
	})
}

func TestCourseService_ModuleLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.adminSession(t)

	require.NoError(t, f.courseAdmin.AddModule(ctx, admin, "1", "Lógica"))
	require.NoError(t, f.courseAdmin.AddModule(ctx, admin, "1", "Algoritmos"))

	c, err := f.courses.Get("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lógica", "Algoritmos"}, c.ModuleNames())

	require.NoError(t, f.courseAdmin.RenameModule(ctx, admin, "1", 1, "Estruturas"))
	c, _ = f.courses.Get("1")
	assert.Equal(t, "Estruturas", c.Modules[1].Name)
	require.NotNil(t, c.Modules[1].LastEdit)
	assert.Equal(t, admin.Username, c.Modules[1].LastEdit.By)

	assert.ErrorIs(t, f.courseAdmin.RenameModule(ctx, admin, "1", 5, "X"), common.ErrNotFound)

	require.NoError(t, f.courseAdmin.RemoveModule(ctx, admin, "1", 0))
	c, _ = f.courses.Get("1")
	assert.Equal(t, []string{"Estruturas"}, c.ModuleNames())

	assert.ErrorIs(t, f.courseAdmin.RemoveModule(ctx, admin, "1", 3), common.ErrNotFound)
}
