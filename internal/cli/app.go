// Package cli implements the interactive terminal menus. Screens only
// talk to the services through their exported contracts; all state lives
// behind the service layer.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/config"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/render"
	coursesrepo "github.com/mcoelho/eduterm/internal/repositories/courses"
	usersrepo "github.com/mcoelho/eduterm/internal/repositories/users"
	"github.com/mcoelho/eduterm/internal/services"
)

// App wires the stores and services behind the menu tree.
type App struct {
	config       *config.Config
	log          logging.Logger
	users        usersrepo.Repository
	courses      coursesrepo.Repository
	auditor      *audit.Log
	sessions     *services.SessionManager
	registration *services.RegistrationService
	enrollment   *services.EnrollmentService
	courseAdmin  *services.CourseService
	certificates *services.CertificateService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the stores described by cfg and wires the services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	users, err := usersrepo.NewJSONRepository(cfg.UsersFile)
	if err != nil {
		return nil, err
	}
	courses, err := coursesrepo.NewJSONRepository(cfg.CoursesFile)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(cfg.CertificatesDir, cfg.CertificateFormat)
	if err != nil {
		return nil, err
	}
	auditor := audit.New(cfg.AuditLogFile)

	return &App{
		config:       cfg,
		log:          log,
		users:        users,
		courses:      courses,
		auditor:      auditor,
		sessions:     services.NewSessionManager(users, auditor, log),
		registration: services.NewRegistrationService(users, auditor, log),
		enrollment:   services.NewEnrollmentService(users, courses, auditor, log),
		courseAdmin:  services.NewCourseService(courses, auditor, log),
		certificates: services.NewCertificateService(users, courses, renderer, auditor, log),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}
