package field

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// PasswordMinLength is the shortest password, in runes, that is accepted.
const PasswordMinLength = 7

var validate = validator.New()

// Status is the verdict for a field's current text.
type Status int

const (
	StatusInvalid Status = iota
	StatusValid
)

func (s Status) String() string {
	if s == StatusValid {
		return "valid"
	}
	return "invalid"
}

// State is what a reactor publishes after every action. Message is nil only
// when the text was empty.
type State struct {
	Message *string
	Status  Status
}

// Valid reports whether the state carries a valid verdict.
func (s State) Valid() bool { return s.Status == StatusValid }

// Text returns the message or "" when hidden.
func (s State) Text() string {
	if s.Message == nil {
		return ""
	}
	return *s.Message
}

// Validate maps raw text for a field kind to its state. Text is never
// trimmed: surrounding whitespace counts against an email address.
func Validate(kind Kind, text string) State {
	if text == "" {
		return State{Status: StatusInvalid}
	}

	var ok bool
	switch kind {
	case KindEmail:
		ok = IsEmail(text)
	case KindPassword:
		ok = utf8.RuneCountInString(text) >= PasswordMinLength
	default:
		return State{Status: StatusInvalid}
	}

	status := StatusInvalid
	if ok {
		status = StatusValid
	}
	msg := message(kind, status)
	return State{Message: &msg, Status: status}
}

// IsEmail applies validator's email rule: a local part, "@", and a host with
// at least one dot. Whitespace anywhere fails, quoted local parts included.
func IsEmail(text string) bool {
	if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
		return false
	}
	return validate.Var(text, "email") == nil
}

func message(kind Kind, status Status) string {
	if status == StatusValid {
		if kind == KindEmail {
			return "Email looks great"
		}
		return "Password looks great"
	}
	if kind == KindEmail {
		return "Please enter a valid email address"
	}
	return "Please enter a valid password"
}
