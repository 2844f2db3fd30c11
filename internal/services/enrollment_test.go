package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoelho/eduterm/internal/common"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerStudent(t, "alice123")

	t.Run("requires admin", func(t *testing.T) {
		err := f.enrollment.Enroll(ctx, nil, "alice123", "1")
		assert.ErrorIs(t, err, common.ErrNotAuthenticated)

		student := f.loginAs(t, "alice123", "Valid@123")
		err = f.enrollment.Enroll(ctx, student, "alice123", "1")
		assert.ErrorIs(t, err, common.ErrPermissionDenied)
		require.NoError(t, f.sessions.Logout(ctx))
	})

	t.Run("unknown student or course", func(t *testing.T) {
		admin := f.adminSession(t)
		assert.ErrorIs(t, f.enrollment.Enroll(ctx, admin, "ghost", "1"), common.ErrNotFound)
		assert.ErrorIs(t, f.enrollment.Enroll(ctx, admin, "alice123", "99"), common.ErrNotFound)
	})

	t.Run("enrolls and is idempotent", func(t *testing.T) {
		admin := f.sessions.Current()
		require.NoError(t, f.enrollment.Enroll(ctx, admin, "alice123", "1"))
		require.NoError(t, f.enrollment.Enroll(ctx, admin, "alice123", "1"))

		acc, err := f.users.Get("alice123")
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, acc.EnrolledCourses)
	})
}

func TestEnrollmentService_CompleteModule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.registerStudent(t, "alice123")

	admin := f.adminSession(t)
	require.NoError(t, f.courseAdmin.AddModule(ctx, admin, "1", "Lógica"))
	require.NoError(t, f.enrollment.Enroll(ctx, admin, "alice123", "1"))
	require.NoError(t, f.sessions.Logout(ctx))

	t.Run("requires session", func(t *testing.T) {
		err := f.enrollment.CompleteModule(ctx, nil, "1", "Lógica")
		assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	})

	session := f.loginAs(t, "alice123", "Valid@123")

	t.Run("must be enrolled", func(t *testing.T) {
		err := f.enrollment.CompleteModule(ctx, session, "2", "Qualquer")
		assert.ErrorIs(t, err, common.ErrNotEnrolled)
	})

	t.Run("module must exist", func(t *testing.T) {
		err := f.enrollment.CompleteModule(ctx, session, "1", "Inexistente")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("records once", func(t *testing.T) {
		require.NoError(t, f.enrollment.CompleteModule(ctx, session, "1", "Lógica"))
		require.NoError(t, f.enrollment.CompleteModule(ctx, session, "1", "Lógica"))

		acc, err := f.users.Get("alice123")
		require.NoError(t, err)
		assert.Equal(t, []string{"Lógica"}, acc.CompletedModules["1"])
	})
}
