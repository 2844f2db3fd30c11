// Package render produces certificate artifacts. Each renderer writes one
// file per issuance into the installation's certificates directory, named
// by the certificate code.
package render

import (
	"fmt"
	"time"

	"github.com/mcoelho/eduterm/internal/config"
	"github.com/mcoelho/eduterm/internal/filex"
)

// Certificate holds the fields stamped onto an artifact.
type Certificate struct {
	StudentName string
	CourseName  string
	Duration    string
	Code        string
	IssuedAt    time.Time
}

// body is the shared certificate text. The issue date is formatted
// DD/MM/YYYY.
func (c Certificate) body() string {
	return fmt.Sprintf(
		"Certificamos que %s concluiu com êxito o curso '%s' com carga horária de %s.\n\n"+
			"Data de emissão: %s\n\n"+
			"Código de validação: %s",
		c.StudentName, c.CourseName, c.Duration, c.IssuedAt.Format("02/01/2006"), c.Code)
}

const (
	title  = "CERTIFICADO"
	footer = "Este certificado pode ser validado em nossa plataforma"
)

// Renderer writes a certificate artifact and returns its path.
type Renderer interface {
	Render(cert Certificate) (string, error)
}

// New builds the renderer for the configured format, ensuring the output
// directory exists.
func New(dir, format string) (Renderer, error) {
	if err := filex.EnsureDir(dir); err != nil {
		return nil, err
	}
	switch format {
	case config.FormatPDF:
		return &PDFRenderer{dir: dir}, nil
	case config.FormatText:
		return &TextRenderer{dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown certificate format %q", format)
	}
}
