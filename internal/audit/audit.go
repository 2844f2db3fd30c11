// Package audit appends security- and state-relevant actions to a flat log
// file. The file is a data format of its own: one block per entry, never
// rewritten, and never read back by the services that write it (only the
// administrative viewer shows it).
package audit

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// SystemActor is recorded when an action happens without a session.
const SystemActor = "SYSTEM"

const separator = "--------------------------------------------------"

// Log writes append-only entry blocks to a single file.
//
// Each block is four lines plus a separator:
//
//	[2025-01-02 15:04:05]
//	Usuário: admin
//	Ação: Login realizado
//	Detalhes: Usuário: admin
//	--------------------------------------------------
type Log struct {
	path string
	now  func() time.Time
}

// New creates a Log appending to path. The file is created on first write.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Record appends one entry. An empty actor is recorded as SystemActor.
// The file is opened per write, matching the single-operator deployment:
// no handle is held across the interactive session's lifetime.
func (l *Log) Record(actor, action, details string) error {
	if actor == "" {
		actor = SystemActor
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	block := fmt.Sprintf("[%s]\nUsuário: %s\nAção: %s\nDetalhes: %s\n%s\n",
		l.now().Format("2006-01-02 15:04:05"), actor, action, details, separator)

	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// Dump returns the raw log content for the administrative viewer. A log
// that was never written to reads as empty, not as an error.
func (l *Log) Dump() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read audit log: %w", err)
	}
	return string(data), nil
}

// EntryCount reports how many blocks the log currently holds.
func (l *Log) EntryCount() (int, error) {
	content, err := l.Dump()
	if err != nil {
		return 0, err
	}
	return strings.Count(content, separator), nil
}
