package services

import (
	"context"
	"fmt"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/repositories/courses"
	"github.com/mcoelho/eduterm/internal/repositories/users"
)

// EnrollmentService maintains per-student enrollment and module-completion
// data, the records the certificate eligibility check consumes.
type EnrollmentService struct {
	users   users.Repository
	courses courses.Repository
	auditor *audit.Log
	log     logging.Logger
}

func NewEnrollmentService(userRepo users.Repository, courseRepo courses.Repository, auditor *audit.Log, log logging.Logger) *EnrollmentService {
	return &EnrollmentService{users: userRepo, courses: courseRepo, auditor: auditor, log: log}
}

// Enroll adds a student to a course. Admin-gated; enrolling an already
// enrolled student is a no-op that still succeeds.
func (s *EnrollmentService) Enroll(ctx context.Context, session *models.Session, username, courseID string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	account, err := s.users.Get(username)
	if err != nil {
		return err
	}
	if _, err := s.courses.Get(courseID); err != nil {
		return err
	}
	if account.IsEnrolled(courseID) {
		return nil
	}

	account.EnrolledCourses = append(account.EnrolledCourses, courseID)
	if err := s.users.Save(); err != nil {
		return err
	}

	s.log.Info(ctx, "student enrolled", "user", username, "course", courseID)
	details := fmt.Sprintf("Usuário: %s | Curso: %s", username, courseID)
	return s.auditor.Record(session.Username, "Aluno matriculado", details)
}

// CompleteModule records that the session's student finished a module of
// an enrolled course. The module must exist in the course; completing it
// twice is a no-op, so duplicates never accumulate in the stored data.
func (s *EnrollmentService) CompleteModule(ctx context.Context, session *models.Session, courseID, moduleName string) error {
	if session == nil {
		return common.ErrNotAuthenticated
	}

	account, err := s.users.Get(session.Username)
	if err != nil {
		return err
	}
	if !account.IsEnrolled(courseID) {
		return common.ErrNotEnrolled
	}

	course, err := s.courses.Get(courseID)
	if err != nil {
		return err
	}
	found := false
	for _, m := range course.Modules {
		if m.Name == moduleName {
			found = true
			break
		}
	}
	if !found {
		return common.ErrNotFound
	}

	for _, done := range account.CompletedModules[courseID] {
		if done == moduleName {
			return nil
		}
	}
	account.CompletedModules[courseID] = append(account.CompletedModules[courseID], moduleName)
	if err := s.users.Save(); err != nil {
		return err
	}

	s.log.Info(ctx, "module completed", "user", session.Username, "course", courseID, "module", moduleName)
	details := fmt.Sprintf("Curso: %s | Módulo: %s", courseID, moduleName)
	return s.auditor.Record(session.Username, "Módulo concluído", details)
}
