package audit

import (
	"context"
	"log"
	"strings"

	"github.com/zoobzio/capitan"
)

// Hook registers capitan hooks that print one line per sign-up signal to
// logger. Password text is never part of any signal.
func Hook(logger *log.Logger) {
	capitan.Hook(FieldChanged, func(_ context.Context, e *capitan.Event) {
		kind, _ := KeyField.From(e)
		status, _ := KeyStatus.From(e)
		logger.Print(line("field.changed", "field", kind, "status", status))
	})
	capitan.Hook(SubmitToggled, func(_ context.Context, e *capitan.Event) {
		enabled, _ := KeyEnabled.From(e)
		logger.Print(line("submit.toggled", "enabled", enabled))
	})
	capitan.Hook(FocusAdvanced, func(_ context.Context, e *capitan.Event) {
		kind, _ := KeyField.From(e)
		logger.Print(line("focus.advanced", "field", kind))
	})
	capitan.Hook(SubmitRequested, func(_ context.Context, e *capitan.Event) {
		email, _ := KeyEmail.From(e)
		logger.Print(line("submit.requested", "email", email))
	})
	capitan.Hook(AccountCreated, func(_ context.Context, e *capitan.Event) {
		id, _ := KeyAccountID.From(e)
		email, _ := KeyEmail.From(e)
		logger.Print(line("account.created", "id", id, "email", email))
	})
	capitan.Hook(AccountRejected, func(_ context.Context, e *capitan.Event) {
		email, _ := KeyEmail.From(e)
		msg, _ := KeyError.From(e)
		logger.Print(line("account.rejected", "email", email, "error", msg))
	})
}

// line renders an event name followed by key=value pairs.
func line(event string, kv ...string) string {
	var b strings.Builder
	b.WriteString(event)
	for i := 0; i+1 < len(kv); i += 2 {
		b.WriteByte(' ')
		b.WriteString(kv[i])
		b.WriteByte('=')
		if strings.ContainsAny(kv[i+1], " \t\"") || kv[i+1] == "" {
			b.WriteString(`"` + strings.ReplaceAll(kv[i+1], `"`, `\"`) + `"`)
			continue
		}
		b.WriteString(kv[i+1])
	}
	return b.String()
}
