package field

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func msg(s string) *string { return &s }

func TestValidateEmptyTextHidesMessage(t *testing.T) {
	for _, kind := range []Kind{KindEmail, KindPassword, KindUnknown} {
		got := Validate(kind, "")
		if diff := cmp.Diff(State{Status: StatusInvalid}, got); diff != "" {
			t.Fatalf("Validate(%s, \"\") mismatch (-want +got):\n%s", kind, diff)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		text string
		want Status
	}{
		{"user@example.com", StatusValid},
		{"a@b.co", StatusValid},
		{"first.last+tag@mail.example.org", StatusValid},
		{"not-an-email", StatusInvalid},
		{"a@b", StatusInvalid},
		{" a@b.co", StatusInvalid},
		{"a@b.co ", StatusInvalid},
		{"a b@c.co", StatusInvalid},
		{"\"a b\"@c.co", StatusInvalid},
		{"a\tb@c.co", StatusInvalid},
		{"a@b.co\n", StatusInvalid},
		{"@example.com", StatusInvalid},
		{"user@", StatusInvalid},
		{"user@@example.com", StatusInvalid},
	}
	for _, tc := range cases {
		got := Validate(KindEmail, tc.text)
		if got.Status != tc.want {
			t.Fatalf("Validate(email, %q) status = %s, want %s", tc.text, got.Status, tc.want)
		}
		if got.Message == nil {
			t.Fatalf("Validate(email, %q) message = nil, want text", tc.text)
		}
	}
}

func TestValidateEmailMessages(t *testing.T) {
	if diff := cmp.Diff(State{Message: msg("Email looks great"), Status: StatusValid}, Validate(KindEmail, "user@example.com")); diff != "" {
		t.Fatalf("valid email mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(State{Message: msg("Please enter a valid email address"), Status: StatusInvalid}, Validate(KindEmail, "not-an-email")); diff != "" {
		t.Fatalf("invalid email mismatch (-want +got):\n%s", diff)
	}
}

func TestValidatePasswordBoundary(t *testing.T) {
	six := Validate(KindPassword, "123456")
	if six.Status != StatusInvalid || six.Text() != "Please enter a valid password" {
		t.Fatalf("6 chars = %+v (%q), want invalid", six.Status, six.Text())
	}
	seven := Validate(KindPassword, "1234567")
	if seven.Status != StatusValid || seven.Text() != "Password looks great" {
		t.Fatalf("7 chars = %+v (%q), want valid", seven.Status, seven.Text())
	}
}

func TestPasswordMinLengthIsFirstAcceptedLength(t *testing.T) {
	short := strings.Repeat("x", PasswordMinLength-1)
	if Validate(KindPassword, short).Valid() {
		t.Fatalf("%d chars should be invalid", PasswordMinLength-1)
	}
	if !Validate(KindPassword, strings.Repeat("x", PasswordMinLength)).Valid() {
		t.Fatalf("%d chars should be valid", PasswordMinLength)
	}
}

func TestValidatePasswordCountsRunes(t *testing.T) {
	if got := Validate(KindPassword, "ééééééé"); !got.Valid() {
		t.Fatalf("7 runes should be valid, got %s", got.Status)
	}
	if got := Validate(KindPassword, "éééééé"); got.Valid() {
		t.Fatalf("6 runes should be invalid even at 12 bytes")
	}
}

func TestValidateIsTotal(t *testing.T) {
	long := strings.Repeat("x", 1<<16)
	inputs := []string{long, "\x00", "日本語テキスト", "\n\t", long + "@example.com"}
	for _, in := range inputs {
		for _, kind := range []Kind{KindEmail, KindPassword} {
			got := Validate(kind, in)
			if got.Message == nil {
				t.Fatalf("Validate(%s, %.10q) returned no message for non-empty text", kind, in)
			}
		}
	}
}

func TestValidateUnknownKind(t *testing.T) {
	got := Validate(KindUnknown, "anything")
	if got.Valid() || got.Message != nil {
		t.Fatalf("unknown kind = %+v, want invalid without message", got)
	}
}

func TestTraitsFor(t *testing.T) {
	email := TraitsFor(KindEmail)
	want := Traits{ReturnKey: ReturnKeyNext, Keyboard: KeyboardEmailAddress, Placeholder: "What's your email?"}
	if diff := cmp.Diff(want, email); diff != "" {
		t.Fatalf("email traits mismatch (-want +got):\n%s", diff)
	}
	pw := TraitsFor(KindPassword)
	if !pw.SecureEntry || !pw.ClearsOnInsertion || pw.ReturnKey != ReturnKeyDone || pw.Placeholder != "Password" {
		t.Fatalf("password traits = %+v", pw)
	}
}
