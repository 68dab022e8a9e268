// Package audit records access-control events such as logins, password
// changes and administrator account changes.
package audit

import (
	"context"
	"time"

	"go-hrm/internal/shared/contextutil"
)

const (
	ActionLogin           = "LOGIN"
	ActionLoginFailed     = "LOGIN_FAILED"
	ActionLogout          = "LOGOUT"
	ActionPasswordChanged = "PASSWORD_CHANGED"
	ActionPasswordReset   = "PASSWORD_RESET_BY_ADMIN"
	ActionAdminCreated    = "ADMIN_CREATED"
	ActionAdminDeleted    = "ADMIN_DELETED"
	ActionServerShutdown  = "SERVER_SHUTDOWN"
)

type Entry struct {
	Action     string         `json:"action"`
	ActorID    string         `json:"actor_id,omitempty"`
	TargetID   string         `json:"target_id,omitempty"`
	Message    string         `json:"message,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Logger never returns an error: an audit sink failure must not fail the
// operation being audited.
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// stamp fills in the request id and timestamp when the caller left them out.
func stamp(ctx context.Context, entry Entry) Entry {
	if entry.RequestID == "" {
		entry.RequestID = contextutil.GetRequestID(ctx)
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	return entry
}

type nopLogger struct{}

func (nopLogger) Log(context.Context, Entry) {}

// Nop discards every entry.
func Nop() Logger { return nopLogger{} }
