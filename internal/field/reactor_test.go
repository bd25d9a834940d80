package field

import "testing"

func TestReactorInitialState(t *testing.T) {
	r := NewReactor(KindEmail)
	if r.State().Valid() || r.State().Message != nil {
		t.Fatalf("initial state = %+v, want invalid without message", r.State())
	}
}

func TestReactorScenarios(t *testing.T) {
	email := NewReactor(KindEmail)

	if got := email.Send(Edit(KindEmail, "")); got.Message != nil || got.Valid() {
		t.Fatalf("empty edit = %+v", got)
	}
	if got := email.Send(Edit(KindEmail, "user@example.com")); got.Text() != "Email looks great" || !got.Valid() {
		t.Fatalf("valid edit = %q %s", got.Text(), got.Status)
	}
	if got := email.Send(Edit(KindEmail, "not-an-email")); got.Text() != "Please enter a valid email address" || got.Valid() {
		t.Fatalf("invalid edit = %q %s", got.Text(), got.Status)
	}

	pw := NewReactor(KindPassword)
	if got := pw.Send(Edit(KindPassword, "123456")); got.Valid() {
		t.Fatal("6-char password should be invalid")
	}
	if got := pw.Send(Edit(KindPassword, "1234567")); !got.Valid() {
		t.Fatal("7-char password should be valid")
	}
}

func TestReactorIgnoresUnidentifiedActions(t *testing.T) {
	r := NewReactor(KindEmail)
	r.Send(Edit(KindEmail, "user@example.com"))
	before := r.State()

	text := "x"
	actions := []Action{
		EditingChanged{Kind: KindEmail},
		EditingChanged{Kind: KindUnknown, Text: &text},
		EditingChanged{Kind: KindPassword, Text: &text},
		nil,
	}
	for _, a := range actions {
		got := r.Send(a)
		if got != before {
			t.Fatalf("Send(%#v) changed state to %+v", a, got)
		}
	}
	if r.Text() != "user@example.com" {
		t.Fatalf("text = %q, want unchanged", r.Text())
	}
}

func TestReactorIdempotentEdits(t *testing.T) {
	r := NewReactor(KindPassword)
	first := r.Send(Edit(KindPassword, "secret-pass"))
	second := r.Send(Edit(KindPassword, "secret-pass"))
	if first.Status != second.Status || first.Text() != second.Text() {
		t.Fatalf("repeat edit: %+v vs %+v", first, second)
	}
}

func TestReactorSubscribeReplaysAndOrders(t *testing.T) {
	r := NewReactor(KindPassword)
	var seen []string
	cancel := r.Subscribe(func(s State) { seen = append(seen, s.Status.String()+":"+s.Text()) })

	r.Send(Edit(KindPassword, "a"))
	r.Send(Edit(KindPassword, "abcdefg"))
	r.Send(Edit(KindPassword, ""))

	want := []string{
		"invalid:",
		"invalid:Please enter a valid password",
		"valid:Password looks great",
		"invalid:",
	}
	if len(seen) != len(want) {
		t.Fatalf("emissions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("emission %d = %q, want %q", i, seen[i], want[i])
		}
	}

	cancel()
	cancel()
	r.Send(Edit(KindPassword, "abcdefgh"))
	if len(seen) != len(want) {
		t.Fatalf("listener called after cancel: %v", seen)
	}
}

func TestReactorListenerCanCancelDuringPublish(t *testing.T) {
	r := NewReactor(KindEmail)
	calls := 0
	var cancel func()
	cancel = r.Subscribe(func(State) {
		calls++
		if calls == 2 {
			cancel()
		}
	})
	other := 0
	r.Subscribe(func(State) { other++ })

	r.Send(Edit(KindEmail, "a"))
	r.Send(Edit(KindEmail, "b"))
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if other != 3 {
		t.Fatalf("other listener calls = %d, want 3", other)
	}
}
