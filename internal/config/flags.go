package config

import (
	"flag"
	"os"

	"github.com/mcoelho/eduterm/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   path to the user store JSON file
//	-k string   path to the course catalog JSON file
//	-l string   path to the audit log file
//	-d string   certificates output directory
//	-f string   certificate format: pdf or txt
//
// Only the flags listed above are parsed; everything else on the command
// line is filtered out first via flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-l", "-d", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "path to the user store")
	fs.StringVar(&cfg.CoursesFile, "k", cfg.CoursesFile, "path to the course catalog")
	fs.StringVar(&cfg.AuditLogFile, "l", cfg.AuditLogFile, "path to the audit log")
	fs.StringVar(&cfg.CertificatesDir, "d", cfg.CertificatesDir, "certificates output directory")
	fs.StringVar(&cfg.CertificateFormat, "f", cfg.CertificateFormat, "certificate format (pdf|txt)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
