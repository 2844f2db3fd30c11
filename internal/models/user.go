// Package models defines the persisted entities of the platform. JSON tags
// follow the legacy on-disk schema, which the stores must keep readable by
// existing installations.
package models

// CertificateRecord is one issued certificate. Once appended to an
// account's list it is never mutated or removed.
type CertificateRecord struct {
	CourseID     string `json:"curso"`
	Code         string `json:"codigo"`
	IssuedAt     string `json:"data"`
	ArtifactPath string `json:"caminho"`
}

// UserAccount is one entry of the credential store. The username is the
// store key, not a struct field.
//
// Password is stored and compared verbatim; the legacy data format has no
// hashing scheme. A real deployment needs a secrets-handling boundary
// (hashed storage, constant-time comparison) before this store can be
// considered safe; the weakness is kept deliberately, not by oversight.
type UserAccount struct {
	Password         string              `json:"senha"`
	Email            string              `json:"email"`
	Age              int                 `json:"idade"`
	IsAdmin          bool                `json:"is_admin"`
	RegisteredAt     string              `json:"data_cadastro"`
	EnrolledCourses  []string            `json:"cursos"`
	Certificates     []CertificateRecord `json:"certificados,omitempty"`
	CompletedModules map[string][]string `json:"modulos_concluidos,omitempty"`
}

// Normalize fills the optional collections that older store files omit, so
// callers never have to nil-check them.
func (u *UserAccount) Normalize() {
	if u.EnrolledCourses == nil {
		u.EnrolledCourses = []string{}
	}
	if u.Certificates == nil {
		u.Certificates = []CertificateRecord{}
	}
	if u.CompletedModules == nil {
		u.CompletedModules = map[string][]string{}
	}
}

// IsEnrolled reports whether the account is enrolled in the given course.
func (u *UserAccount) IsEnrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
