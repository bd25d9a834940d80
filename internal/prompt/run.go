// Package prompt collects sign-up details with line prompts for terminals
// where the full-screen form is unavailable.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
)

// Run asks for the email and then the password, feeding every answer to
// the form's reactors, and returns the credentials of the accepted submit.
func Run(ctx context.Context, f *form.Coordinator, d Driver) (form.Credentials, error) {
	emailTraits := field.TraitsFor(field.KindEmail)
	if _, err := d.Input(ctx, InputConfig{
		Message:   emailTraits.Placeholder,
		Validator: reactorValidator(f.Email()),
	}); err != nil {
		return form.Credentials{}, fmt.Errorf("email: %w", err)
	}
	f.EndEditing(field.KindEmail)

	pwTraits := field.TraitsFor(field.KindPassword)
	ask := d.Input
	if pwTraits.SecureEntry {
		ask = d.Password
	}
	if _, err := ask(ctx, InputConfig{
		Message:   pwTraits.Placeholder,
		Help:      fmt.Sprintf("At least %d characters", field.PasswordMinLength),
		Validator: reactorValidator(f.Password()),
	}); err != nil {
		return form.Credentials{}, fmt.Errorf("password: %w", err)
	}
	f.EndEditing(field.KindPassword)

	return f.RequestSubmit()
}

// reactorValidator sends each answer to r and rejects it with the reactor's
// own message while the field is invalid.
func reactorValidator(r *field.Reactor) func(string) error {
	return func(s string) error {
		st := r.Send(field.Edit(r.Kind(), s))
		if st.Valid() {
			return nil
		}
		if st.Message == nil {
			return errors.New("a value is required")
		}
		return errors.New(*st.Message)
	}
}
