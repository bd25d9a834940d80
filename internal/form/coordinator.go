// Package form composes the email and password reactors into a sign-up form.
package form

import (
	"errors"

	"github.com/jask/signup/internal/field"
)

// ErrSubmitDisabled is returned when a submit is requested before both
// fields are valid.
var ErrSubmitDisabled = errors.New("form: submit is disabled")

// Credentials is the text of both fields at the time of a submit request.
type Credentials struct {
	Email    string
	Password string
}

// Coordinator owns one reactor per field and derives whether the form may be
// submitted. Like the reactors it wraps, it is not safe for concurrent use.
type Coordinator struct {
	email    *field.Reactor
	password *field.Reactor

	inset int

	enabled  listeners[bool]
	focus    listeners[field.Kind]
	submit   listeners[Credentials]
	insetChg listeners[int]
}

// New builds a coordinator with fresh email and password reactors.
func New() *Coordinator {
	c := &Coordinator{
		email:    field.NewReactor(field.KindEmail),
		password: field.NewReactor(field.KindPassword),
	}
	onUpdate := func(field.State) { c.enabled.emit(c.SubmitEnabled()) }
	c.email.Subscribe(onUpdate)
	c.password.Subscribe(onUpdate)
	return c
}

func (c *Coordinator) Email() *field.Reactor    { return c.email }
func (c *Coordinator) Password() *field.Reactor { return c.password }

// Reactor returns the reactor for kind, or nil for an unknown kind.
func (c *Coordinator) Reactor(kind field.Kind) *field.Reactor {
	switch kind {
	case field.KindEmail:
		return c.email
	case field.KindPassword:
		return c.password
	default:
		return nil
	}
}

// SubmitEnabled reports whether both fields are valid. It is recomputed from
// the reactors on every call.
func (c *Coordinator) SubmitEnabled() bool {
	return c.email.State().Valid() && c.password.State().Valid()
}

// OnSubmitEnabled delivers the current value, then a value after every
// update from either field.
func (c *Coordinator) OnSubmitEnabled(fn func(bool)) (cancel func()) {
	cancel = c.enabled.add(fn)
	fn(c.SubmitEnabled())
	return cancel
}

// EndEditing tells the coordinator that kind lost focus. When the email
// field ends editing while the password is still empty, focus-advance
// listeners are told to move to the password field.
func (c *Coordinator) EndEditing(kind field.Kind) {
	if kind != field.KindEmail {
		return
	}
	if c.password.Text() != "" {
		return
	}
	c.focus.emit(field.KindPassword)
}

// OnFocusAdvance registers fn to receive the field that should take focus.
func (c *Coordinator) OnFocusAdvance(fn func(field.Kind)) (cancel func()) {
	return c.focus.add(fn)
}

// RequestSubmit hands out the credentials when submit is enabled and
// notifies submit listeners. It performs no I/O.
func (c *Coordinator) RequestSubmit() (Credentials, error) {
	if !c.SubmitEnabled() {
		return Credentials{}, ErrSubmitDisabled
	}
	creds := Credentials{Email: c.email.Text(), Password: c.password.Text()}
	c.submit.emit(creds)
	return creds, nil
}

// OnSubmit registers fn to receive every accepted submit request.
func (c *Coordinator) OnSubmit(fn func(Credentials)) (cancel func()) {
	return c.submit.add(fn)
}

// SetInset records the vertical space the view must keep clear, in rows.
// It only affects layout listeners.
func (c *Coordinator) SetInset(rows int) {
	if rows < 0 {
		rows = 0
	}
	c.inset = rows
	c.insetChg.emit(rows)
}

func (c *Coordinator) Inset() int { return c.inset }

// OnInset registers fn to receive every inset change.
func (c *Coordinator) OnInset(fn func(int)) (cancel func()) {
	return c.insetChg.add(fn)
}
