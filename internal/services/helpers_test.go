package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/config"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/render"
	coursesrepo "github.com/mcoelho/eduterm/internal/repositories/courses"
	usersrepo "github.com/mcoelho/eduterm/internal/repositories/users"
)

// fixture wires real file-backed stores in a temp dir, the way the
// application itself runs.
type fixture struct {
	dir          string
	users        *usersrepo.JSONRepository
	courses      *coursesrepo.JSONRepository
	auditor      *audit.Log
	sessions     *SessionManager
	registration *RegistrationService
	enrollment   *EnrollmentService
	courseAdmin  *CourseService
	certificates *CertificateService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	users, err := usersrepo.NewJSONRepository(filepath.Join(dir, "dados_usuarios.json"))
	require.NoError(t, err)
	courses, err := coursesrepo.NewJSONRepository(filepath.Join(dir, "cursos.json"))
	require.NoError(t, err)
	auditor := audit.New(filepath.Join(dir, "registro_logs.log"))

	renderer, err := render.New(filepath.Join(dir, "certificados"), config.FormatText)
	require.NoError(t, err)

	log := logging.NopLogger{}
	return &fixture{
		dir:          dir,
		users:        users,
		courses:      courses,
		auditor:      auditor,
		sessions:     NewSessionManager(users, auditor, log),
		registration: NewRegistrationService(users, auditor, log),
		enrollment:   NewEnrollmentService(users, courses, auditor, log),
		courseAdmin:  NewCourseService(courses, auditor, log),
		certificates: NewCertificateService(users, courses, renderer, auditor, log),
	}
}

// registerStudent creates a valid student account directly in the store.
func (f *fixture) registerStudent(t *testing.T, username string) {
	t.Helper()
	in := RegistrationInput{
		Username: username,
		Password: "Valid@123",
		Email:    username + "@escola.com",
		Age:      20,
	}
	require.NoError(t, f.registration.Register(context.Background(), "", in, false))
}

// loginAs opens a session for username with the given password.
func (f *fixture) loginAs(t *testing.T, username, password string) *models.Session {
	t.Helper()
	require.NoError(t, f.sessions.Login(context.Background(), username, password))
	return f.sessions.Current()
}

// adminSession logs in as the bootstrap admin.
func (f *fixture) adminSession(t *testing.T) *models.Session {
	t.Helper()
	return f.loginAs(t, usersrepo.DefaultAdminUsername, usersrepo.DefaultAdminPassword)
}

// storePath is the user store file of a fixture.
func storePath(f *fixture) string {
	return filepath.Join(f.dir, "dados_usuarios.json")
}

// auditEntries returns how many blocks the audit log holds.
func (f *fixture) auditEntries(t *testing.T) int {
	t.Helper()
	n, err := f.auditor.EntryCount()
	require.NoError(t, err)
	return n
}
