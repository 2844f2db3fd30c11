// Package services contains the application services of eduterm: session
// management, registration, enrollment, course administration, and
// certificate issuance. Services own all mutations of the stores; the cli
// layer drives them only through their exported contracts.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/repositories/users"
)

// DeleteConfirmation is the literal a user must type to confirm deleting
// their own account.
const DeleteConfirmation = "DELETAR"

// SessionManager owns the single logged-in identity of the process.
//
// State machine: Anonymous <-> Authenticated(username, isAdmin). Login is
// valid only from Anonymous; Logout from Authenticated (a no-op otherwise).
// The admin flag is cached at login time and deliberately not refreshed if
// the account's role is changed mid-session.
type SessionManager struct {
	users   users.Repository
	auditor *audit.Log
	log     logging.Logger
	current *models.Session
}

// NewSessionManager constructs a SessionManager over the given store and
// audit log.
func NewSessionManager(repo users.Repository, auditor *audit.Log, log logging.Logger) *SessionManager {
	return &SessionManager{users: repo, auditor: auditor, log: log}
}

// Current returns the active session, or nil when anonymous.
func (m *SessionManager) Current() *models.Session {
	return m.current
}

// IsAuthenticated reports whether a session is open.
func (m *SessionManager) IsAuthenticated() bool {
	return m.current != nil
}

// IsAdmin reports whether the active session carries admin rights. The
// flag reflects the account's role at login time.
func (m *SessionManager) IsAdmin() bool {
	return m.current != nil && m.current.IsAdmin
}

// Login authenticates username/password and opens a session.
//
// The store is reloaded first so credentials are checked against the
// current on-disk state. Both an unknown username and a wrong password
// fail with the same common.ErrAuthFailed, and neither is audited.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	if m.current != nil {
		return fmt.Errorf("%w: session already open for %s", common.ErrPermissionDenied, m.current.Username)
	}

	if err := m.users.Reload(); err != nil {
		return fmt.Errorf("reload user store: %w", err)
	}

	account, err := m.users.Get(username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrAuthFailed
		}
		return err
	}

	// Verbatim comparison against the stored plaintext; see the note on
	// models.UserAccount.Password.
	if account.Password != password {
		return common.ErrAuthFailed
	}

	m.current = &models.Session{Username: username, IsAdmin: account.IsAdmin}
	m.log.Info(ctx, "session opened", "user", username, "admin", account.IsAdmin)
	return m.auditor.Record(username, "Login realizado", "Usuário: "+username)
}

// Logout closes the session. Calling it while anonymous is a no-op.
func (m *SessionManager) Logout(ctx context.Context) error {
	if m.current == nil {
		return nil
	}
	username := m.current.Username
	m.current = nil
	m.log.Info(ctx, "session closed", "user", username)
	return m.auditor.Record(username, "Logout", "Usuário: "+username)
}

// DeleteOwnAccount removes the logged-in non-admin account after the user
// typed the DeleteConfirmation literal, then forces a logout.
//
// Admin accounts are rejected with common.ErrAdminSelfDelete and must go
// through the administrative deletion path of another admin.
func (m *SessionManager) DeleteOwnAccount(ctx context.Context, confirmation string) error {
	if m.current == nil {
		return common.ErrNotAuthenticated
	}
	if m.current.IsAdmin {
		return common.ErrAdminSelfDelete
	}
	if confirmation != DeleteConfirmation {
		return common.ErrNotConfirmed
	}

	username := m.current.Username
	if err := m.users.Delete(username); err != nil {
		return err
	}
	if err := m.auditor.Record(username, "Conta deletada", "Usuário: "+username); err != nil {
		return err
	}
	return m.Logout(ctx)
}

// AdminDeleteAccount removes another user's account. Requires an admin
// session; deleting the acting account itself is rejected with
// common.ErrSelfDeleteViaAdminPath so the self-delete flow (with its own
// confirmation) stays the only way out.
func (m *SessionManager) AdminDeleteAccount(ctx context.Context, target string) error {
	if m.current == nil {
		return common.ErrNotAuthenticated
	}
	if !m.current.IsAdmin {
		return common.ErrPermissionDenied
	}
	if target == m.current.Username {
		return common.ErrSelfDeleteViaAdminPath
	}

	if err := m.users.Delete(target); err != nil {
		return err
	}
	m.log.Info(ctx, "account deleted by admin", "target", target, "actor", m.current.Username)
	details := fmt.Sprintf("Usuário: %s | Por: %s", target, m.current.Username)
	return m.auditor.Record(m.current.Username, "Usuário deletado por ADM", details)
}
