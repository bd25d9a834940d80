package field

// Action is something a view asks a reactor to do.
type Action interface {
	isAction()
}

// EditingChanged is sent on every edit of the bound input. Kind and Text
// identify the edit; an action missing either is ignored.
type EditingChanged struct {
	Kind Kind
	Text *string
}

func (EditingChanged) isAction() {}

// Edit builds an EditingChanged for kind with text.
func Edit(kind Kind, text string) EditingChanged {
	return EditingChanged{Kind: kind, Text: &text}
}

// Listener receives every state a reactor publishes.
type Listener func(State)

// Reactor owns the state of a single field. Every action passes through
// Validate and the result is pushed to listeners before Send returns.
//
// A Reactor is not safe for concurrent use; drive it from one goroutine.
type Reactor struct {
	kind      Kind
	state     State
	text      string
	listeners []*subscription
}

type subscription struct {
	fn     Listener
	active bool
}

// NewReactor returns a reactor for kind in its initial state.
func NewReactor(kind Kind) *Reactor {
	return &Reactor{kind: kind, state: State{Status: StatusInvalid}}
}

func (r *Reactor) Kind() Kind { return r.kind }

// State returns the current state.
func (r *Reactor) State() State { return r.state }

// Text returns the raw text of the last accepted edit.
func (r *Reactor) Text() string { return r.text }

// Send applies a and publishes the resulting state.
func (r *Reactor) Send(a Action) State {
	r.state = r.reduce(r.state, a)
	r.publish()
	return r.state
}

func (r *Reactor) reduce(state State, a Action) State {
	switch act := a.(type) {
	case EditingChanged:
		if act.Text == nil || act.Kind == KindUnknown || act.Kind != r.kind {
			return state
		}
		r.text = *act.Text
		return Validate(r.kind, *act.Text)
	default:
		return state
	}
}

// Subscribe registers fn and immediately hands it the current state. The
// returned cancel func stops delivery; calling it more than once is fine.
func (r *Reactor) Subscribe(fn Listener) (cancel func()) {
	sub := &subscription{fn: fn, active: true}
	r.listeners = append(r.listeners, sub)
	fn(r.state)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range r.listeners {
			if s == sub {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				break
			}
		}
	}
}

func (r *Reactor) publish() {
	// listeners may cancel while we iterate
	subs := append([]*subscription(nil), r.listeners...)
	for _, s := range subs {
		if s.active {
			s.fn(r.state)
		}
	}
}
