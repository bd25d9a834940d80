// Package audit turns sign-up lifecycle events into capitan signals and
// writes them to a log.
package audit

import "github.com/zoobzio/capitan"

// Form signals.
var (
	// FieldChanged is emitted after a field reactor publishes a new state.
	FieldChanged = capitan.NewSignal(
		"signup.field.changed",
		"Field state published",
	)

	// SubmitToggled is emitted when the submit affordance flips.
	SubmitToggled = capitan.NewSignal(
		"signup.submit.toggled",
		"Submit enabled state changed",
	)

	// FocusAdvanced is emitted when the form moves focus to the next field.
	FocusAdvanced = capitan.NewSignal(
		"signup.focus.advanced",
		"Focus advanced to next field",
	)

	// SubmitRequested is emitted when a submit request is accepted.
	SubmitRequested = capitan.NewSignal(
		"signup.submit.requested",
		"Submit requested",
	)
)

// Account signals.
var (
	// AccountCreated is emitted once an account is persisted.
	AccountCreated = capitan.NewSignal(
		"signup.account.created",
		"Account created",
	)

	// AccountRejected is emitted when registration fails.
	AccountRejected = capitan.NewSignal(
		"signup.account.rejected",
		"Account registration rejected",
	)
)

// Field keys.
var (
	// KeyField is the field kind ("email" or "password").
	KeyField = capitan.NewStringKey("field")

	// KeyStatus is the field verdict ("valid" or "invalid").
	KeyStatus = capitan.NewStringKey("status")

	// KeyEnabled is "true" or "false".
	KeyEnabled = capitan.NewStringKey("enabled")

	KeyEmail     = capitan.NewStringKey("email")
	KeyAccountID = capitan.NewStringKey("account_id")
	KeyError     = capitan.NewStringKey("error")
)
