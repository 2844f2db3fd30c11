package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/render"
	"github.com/mcoelho/eduterm/internal/repositories/courses"
	"github.com/mcoelho/eduterm/internal/repositories/users"
)

// RemovedCourseName is shown when a certificate references a course id
// that no longer exists in the catalog.
const RemovedCourseName = "Curso Removido"

// codeHexLen is the number of hash characters kept in a certificate code.
const codeHexLen = 12

// CertificateService implements the issuance workflow: eligibility check,
// unique code generation, artifact rendering, and record keeping.
type CertificateService struct {
	users    users.Repository
	courses  courses.Repository
	renderer render.Renderer
	auditor  *audit.Log
	log      logging.Logger
	now      func() time.Time
}

func NewCertificateService(
	userRepo users.Repository,
	courseRepo courses.Repository,
	renderer render.Renderer,
	auditor *audit.Log,
	log logging.Logger,
) *CertificateService {
	return &CertificateService{
		users:    userRepo,
		courses:  courseRepo,
		renderer: renderer,
		auditor:  auditor,
		log:      log,
		now:      time.Now,
	}
}

// generateCode derives the certificate code from the student, the course
// name, and the current timestamp at nanosecond resolution. The timestamp
// is the only entropy across repeated issuances for the same pair, so the
// sub-second precision is what keeps back-to-back codes distinct.
func generateCode(student, courseName string, ts time.Time) string {
	sum := sha256.Sum256([]byte(student + courseName + ts.Format(time.RFC3339Nano)))
	return "CERT-" + strings.ToUpper(hex.EncodeToString(sum[:]))[:codeHexLen]
}

// distinctCount counts the distinct module identifiers in a completion
// list; duplicated entries in the stored data must not count twice.
func distinctCount(moduleNames []string) int {
	seen := make(map[string]struct{}, len(moduleNames))
	for _, name := range moduleNames {
		seen[name] = struct{}{}
	}
	return len(seen)
}

// Issue generates a certificate for the session's student and courseID.
//
// Pipeline: authentication, enrollment (common.ErrNotEnrolled), completion
// of every course module (common.ErrNotCompleted; a course without modules
// is trivially complete), code generation, artifact rendering, and only
// after a successful render the record append and store save. A render
// failure (common.ErrRenderFailed) therefore leaves the student's
// certificate list untouched.
func (s *CertificateService) Issue(ctx context.Context, session *models.Session, courseID string) (*models.CertificateRecord, error) {
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}

	account, err := s.users.Get(session.Username)
	if err != nil {
		return nil, err
	}
	if !account.IsEnrolled(courseID) {
		return nil, common.ErrNotEnrolled
	}

	course, err := s.courses.Get(courseID)
	if err != nil {
		return nil, err
	}

	// Count-based eligibility: as many distinct completed identifiers as
	// the course has modules.
	if distinctCount(account.CompletedModules[courseID]) != len(course.Modules) {
		return nil, common.ErrNotCompleted
	}

	issuedAt := s.now()
	code := generateCode(session.Username, course.Name, issuedAt)

	path, err := s.renderer.Render(render.Certificate{
		StudentName: session.Username,
		CourseName:  course.Name,
		Duration:    course.Duration,
		Code:        code,
		IssuedAt:    issuedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRenderFailed, err)
	}

	record := models.CertificateRecord{
		CourseID:     courseID,
		Code:         code,
		IssuedAt:     issuedAt.Format(time.RFC3339),
		ArtifactPath: path,
	}
	account.Certificates = append(account.Certificates, record)
	if err := s.users.Save(); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "certificate issued", "user", session.Username, "course", courseID, "code", code)
	if err := s.auditor.Record(session.Username, "Certificado emitido", "Curso: "+courseID); err != nil {
		return nil, err
	}
	return &record, nil
}

// CertificateView joins an issued record with the course's current name
// for listing.
type CertificateView struct {
	CourseID     string
	CourseName   string
	Code         string
	IssuedAt     string
	ArtifactPath string
}

// List projects the session user's certificates in issuance order. A
// course that has since been removed from the catalog is shown under
// RemovedCourseName. The only failure mode is a missing session.
func (s *CertificateService) List(session *models.Session) ([]CertificateView, error) {
	if session == nil {
		return nil, common.ErrNotAuthenticated
	}

	account, err := s.users.Get(session.Username)
	if err != nil {
		return nil, err
	}

	views := make([]CertificateView, 0, len(account.Certificates))
	for _, rec := range account.Certificates {
		name := RemovedCourseName
		if course, err := s.courses.Get(rec.CourseID); err == nil {
			name = course.Name
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		views = append(views, CertificateView{
			CourseID:     rec.CourseID,
			CourseName:   name,
			Code:         rec.Code,
			IssuedAt:     rec.IssuedAt,
			ArtifactPath: rec.ArtifactPath,
		})
	}
	return views, nil
}
