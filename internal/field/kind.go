package field

// Kind identifies which input a reactor validates.
type Kind int

const (
	// KindUnknown marks an action that carries no field identity.
	KindUnknown Kind = iota
	KindEmail
	KindPassword
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPassword:
		return "password"
	default:
		return "unknown"
	}
}

// ReturnKey is the label of the confirm key while a field has focus.
type ReturnKey string

const (
	ReturnKeyNext ReturnKey = "next"
	ReturnKeyDone ReturnKey = "done"
)

// Keyboard hints the input method a view should offer.
type Keyboard string

const (
	KeyboardDefault      Keyboard = "default"
	KeyboardEmailAddress Keyboard = "emailAddress"
)

// Traits are the static presentation settings for a field kind.
// Views read them; the reactor never does.
type Traits struct {
	ReturnKey         ReturnKey
	Keyboard          Keyboard
	SecureEntry       bool
	ClearsOnInsertion bool
	Placeholder       string
}

// TraitsFor returns the presentation settings for k. Unknown kinds get the
// zero Traits.
func TraitsFor(k Kind) Traits {
	switch k {
	case KindEmail:
		return Traits{
			ReturnKey:   ReturnKeyNext,
			Keyboard:    KeyboardEmailAddress,
			Placeholder: "What's your email?",
		}
	case KindPassword:
		return Traits{
			ReturnKey:         ReturnKeyDone,
			Keyboard:          KeyboardDefault,
			SecureEntry:       true,
			ClearsOnInsertion: true,
			Placeholder:       "Password",
		}
	default:
		return Traits{}
	}
}
