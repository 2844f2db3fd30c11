package services

import (
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/models"
)

// requireAdmin gates administrative operations on the caller's session.
func requireAdmin(session *models.Session) error {
	if session == nil {
		return common.ErrNotAuthenticated
	}
	if !session.IsAdmin {
		return common.ErrPermissionDenied
	}
	return nil
}
