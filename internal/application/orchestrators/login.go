// Package orchestrators holds the application's write-side use cases.
// Each orchestrator takes an Input and a Deps struct so tests can wire
// mocks without touching global state.
package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// AdminUsername is the single shared admin login name.
const AdminUsername = "admin"

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Username   string
	Password   string
	RemoteAddr string // for the audit log only
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	PasswordHash []byte // bcrypt hash of the shared admin password
}

// ExecuteLogin checks the single shared admin credential.
// PRE: deps.PasswordHash is a valid bcrypt hash
// POST: returns nil only when both username and password match; failures
// are logged as warnings with the client address and never mutate state
func ExecuteLogin(_ context.Context, input LoginInput, deps LoginDeps) error {
	if input.Username != AdminUsername {
		slog.Warn("auth_event", "event", "login_failed", "reason", "wrong_username", "remote_addr", input.RemoteAddr)
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(deps.PasswordHash, []byte(input.Password)); err != nil {
		slog.Warn("auth_event", "event", "login_failed", "reason", "wrong_password", "remote_addr", input.RemoteAddr)
		return ErrInvalidCredentials
	}
	slog.Info("auth_event", "event", "login_success", "remote_addr", input.RemoteAddr)
	return nil
}
