package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/repositories/courses"
)

// CourseService holds the administrative operations over the course
// catalog: creating and editing courses and their module lists.
type CourseService struct {
	courses courses.Repository
	auditor *audit.Log
	log     logging.Logger
	now     func() time.Time
}

func NewCourseService(courseRepo courses.Repository, auditor *audit.Log, log logging.Logger) *CourseService {
	return &CourseService{courses: courseRepo, auditor: auditor, log: log, now: time.Now}
}

// Create adds a course under the next free id and returns that id.
func (s *CourseService) Create(ctx context.Context, session *models.Session, name, duration string) (string, error) {
	if err := requireAdmin(session); err != nil {
		return "", err
	}
	if name == "" || duration == "" {
		return "", fmt.Errorf("%w: Nome e carga horária são obrigatórios", common.ErrValidation)
	}

	course := &models.Course{
		Name:      name,
		Duration:  duration,
		CreatedBy: session.Username,
		CreatedAt: s.now().Format(time.RFC3339),
	}
	id, err := s.courses.Create(course)
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, "course created", "id", id, "name", name)
	return id, s.auditor.Record(session.Username, "Curso criado", fmt.Sprintf("ID: %s | Nome: %s", id, name))
}

// Edit updates a course's name and/or duration. Empty arguments keep the
// current value, mirroring the interactive edit screen.
func (s *CourseService) Edit(ctx context.Context, session *models.Session, id, newName, newDuration string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	course, err := s.courses.Get(id)
	if err != nil {
		return err
	}
	if newName == "" && newDuration == "" {
		return nil
	}
	if newName != "" {
		course.Name = newName
	}
	if newDuration != "" {
		course.Duration = newDuration
	}
	course.EditedBy = session.Username
	course.EditedAt = s.now().Format(time.RFC3339)
	if err := s.courses.Save(); err != nil {
		return err
	}

	return s.auditor.Record(session.Username, "Curso editado", "ID: "+id)
}

// AddModule appends a module to a course.
func (s *CourseService) AddModule(ctx context.Context, session *models.Session, courseID, moduleName string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if moduleName == "" {
		return fmt.Errorf("%w: Nome do módulo é obrigatório", common.ErrValidation)
	}

	course, err := s.courses.Get(courseID)
	if err != nil {
		return err
	}
	course.Modules = append(course.Modules, models.Module{
		Name:      moduleName,
		CreatedBy: session.Username,
		CreatedAt: s.now().Format(time.RFC3339),
		Lessons:   []string{},
	})
	if err := s.courses.Save(); err != nil {
		return err
	}

	details := fmt.Sprintf("ID Curso: %s | Módulo: %s", courseID, moduleName)
	return s.auditor.Record(session.Username, "Módulo criado", details)
}

// RenameModule changes a module's name and stamps the edit.
func (s *CourseService) RenameModule(ctx context.Context, session *models.Session, courseID string, index int, newName string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}
	if newName == "" {
		return fmt.Errorf("%w: Nome do módulo é obrigatório", common.ErrValidation)
	}

	course, err := s.courses.Get(courseID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(course.Modules) {
		return common.ErrNotFound
	}
	course.Modules[index].Name = newName
	course.Modules[index].LastEdit = &models.ModuleEdit{
		By: session.Username,
		At: s.now().Format(time.RFC3339),
	}
	if err := s.courses.Save(); err != nil {
		return err
	}

	details := fmt.Sprintf("ID Curso: %s | Novo nome: %s", courseID, newName)
	return s.auditor.Record(session.Username, "Módulo editado", details)
}

// RemoveModule deletes a module by position.
func (s *CourseService) RemoveModule(ctx context.Context, session *models.Session, courseID string, index int) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	course, err := s.courses.Get(courseID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(course.Modules) {
		return common.ErrNotFound
	}
	removed := course.Modules[index]
	course.Modules = append(course.Modules[:index], course.Modules[index+1:]...)
	if err := s.courses.Save(); err != nil {
		return err
	}

	details := fmt.Sprintf("ID Curso: %s | Módulo: %s", courseID, removed.Name)
	return s.auditor.Record(session.Username, "Módulo removido", details)
}
