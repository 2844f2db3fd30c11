// Package config resolves runtime settings for the eduterm CLI.
//
// Sources are applied in order, later ones winning:
//
//  1. Built-in defaults (the original installation layout).
//  2. Environment variables, optionally loaded from a .env file.
//  3. Command-line flags.
package config

// Format selects how certificate artifacts are rendered.
const (
	FormatPDF  = "pdf"
	FormatText = "txt"
)

// Config holds the file-system layout of one installation.
//
// All stores are flat files; paths are resolved relative to the working
// directory unless absolute.
type Config struct {
	// UsersFile is the JSON credential store (username -> account).
	UsersFile string
	// CoursesFile is the JSON course catalog (course id -> course).
	CoursesFile string
	// AuditLogFile is the append-only action log.
	AuditLogFile string
	// CertificatesDir receives one artifact per issued certificate.
	CertificatesDir string
	// CertificateFormat is FormatPDF or FormatText.
	CertificateFormat string
}

// LoadDefaults populates c with the stock installation layout.
func (c *Config) LoadDefaults() {
	c.UsersFile = "dados_usuarios.json"
	c.CoursesFile = "cursos.json"
	c.AuditLogFile = "registro_logs.log"
	c.CertificatesDir = "certificados"
	c.CertificateFormat = FormatPDF
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
