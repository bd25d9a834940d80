package audit

import (
	"context"
	"strconv"

	"github.com/zoobzio/capitan"

	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
)

// Attach subscribes to c and emits a signal for each field state, submit
// toggle, focus advance and accepted submit. The returned func detaches.
func Attach(ctx context.Context, c *form.Coordinator) (detach func()) {
	var cancels []func()
	for _, r := range []*field.Reactor{c.Email(), c.Password()} {
		kind := r.Kind()
		cancels = append(cancels, r.Subscribe(func(s field.State) {
			capitan.Emit(ctx, FieldChanged,
				KeyField.Field(kind.String()),
				KeyStatus.Field(s.Status.String()),
			)
		}))
	}

	last := c.SubmitEnabled()
	cancels = append(cancels, c.OnSubmitEnabled(func(enabled bool) {
		if enabled == last {
			return
		}
		last = enabled
		capitan.Emit(ctx, SubmitToggled, KeyEnabled.Field(strconv.FormatBool(enabled)))
	}))

	cancels = append(cancels, c.OnFocusAdvance(func(k field.Kind) {
		capitan.Emit(ctx, FocusAdvanced, KeyField.Field(k.String()))
	}))

	cancels = append(cancels, c.OnSubmit(func(cr form.Credentials) {
		capitan.Emit(ctx, SubmitRequested, KeyEmail.Field(cr.Email))
	}))

	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}
