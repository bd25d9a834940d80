package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/internal/database/repository"
	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
	"github.com/jask/signup/internal/service"
)

const fieldWidth = 40

// Registrar stores an accepted sign-up.
type Registrar interface {
	Register(ctx context.Context, creds form.Credentials) (repository.Account, error)
}

type focusTarget int

const (
	focusEmail focusTarget = iota
	focusPassword
	focusButton
	focusNone
)

var fieldKinds = [2]field.Kind{field.KindEmail, field.KindPassword}

// App is the sign-up screen. It binds two text inputs to the form's
// reactors and renders whatever state they publish.
type App struct {
	ctx    context.Context
	cfg    config.Config
	form   *form.Coordinator
	signup Registrar
	keys   keyMap

	inputs        [2]textinput.Model
	states        [2]field.State
	clearOnInsert [2]bool
	focus         focusTarget

	submitEnabled bool
	submitting    bool
	suggestion    string
	account       *repository.Account
	status        string
	statusErr     bool

	width  int
	height int
	inset  int

	cancels []func()
}

// New builds the screen around f. signup may be nil, in which case submit
// requests are reported but nothing is stored.
func New(ctx context.Context, cfg config.Config, f *form.Coordinator, signup Registrar) *App {
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		form:   f,
		signup: signup,
		keys:   newKeyMap(),
		focus:  focusNone,
	}
	for i, kind := range fieldKinds {
		a.inputs[i] = newInput(field.TraitsFor(kind))
	}

	for i, kind := range fieldKinds {
		a.cancels = append(a.cancels, f.Reactor(kind).Subscribe(func(s field.State) {
			a.states[i] = s
			if kind == field.KindEmail {
				a.refreshSuggestion()
			}
		}))
	}
	a.cancels = append(a.cancels,
		f.OnSubmitEnabled(func(v bool) { a.submitEnabled = v }),
		f.OnFocusAdvance(func(k field.Kind) {
			if k == field.KindPassword {
				a.setFocus(focusPassword)
			}
		}),
		f.OnInset(func(rows int) { a.inset = rows }),
	)

	a.setFocus(focusEmail)
	return a
}

func newInput(t field.Traits) textinput.Model {
	in := textinput.New()
	in.Placeholder = t.Placeholder
	in.Prompt = ""
	in.Width = fieldWidth
	if t.SecureEntry {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return in
}

// Close detaches the screen from the form.
func (a *App) Close() {
	for _, cancel := range a.cancels {
		cancel()
	}
	a.cancels = nil
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.syncInset()
		return a, nil
	case signedUpMsg:
		a.submitting = false
		acct := m.Account
		a.account = &acct
		a.setStatus(fmt.Sprintf("Welcome aboard, %s! Your account is ready.", acct.Email), false)
		return a, nil
	case errMsg:
		a.submitting = false
		a.setStatus(describeErr(m.error), true)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, a.updateFocusedInput(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Dismiss):
		from := a.focus
		a.endEditing()
		if a.focus == from {
			a.setFocus(focusNone)
		}
		return a, nil
	case key.Matches(m, a.keys.Next):
		a.moveFocus(1)
		return a, textinput.Blink
	case key.Matches(m, a.keys.Prev):
		a.moveFocus(-1)
		return a, textinput.Blink
	case key.Matches(m, a.keys.Return):
		return a.handleReturn()
	}
	if a.focus == focusNone && isInsertion(m) {
		// typing with nothing focused resumes in the email field
		a.setFocus(focusEmail)
	}
	return a, a.updateFocusedInput(m)
}

// handleReturn applies the focused field's return key: next on email,
// done on password.
func (a *App) handleReturn() (tea.Model, tea.Cmd) {
	switch a.focus {
	case focusEmail:
		a.endEditing()
		if a.focus == focusEmail {
			// the password already has text; move on to the button
			a.setFocus(focusButton)
		}
		return a, textinput.Blink
	case focusPassword, focusButton:
		a.endEditing()
		return a, a.submit()
	default:
		a.setFocus(focusEmail)
		return a, textinput.Blink
	}
}

func (a *App) submit() tea.Cmd {
	if a.submitting {
		return nil
	}
	creds, err := a.form.RequestSubmit()
	if err != nil {
		a.setStatus("Enter a valid email and password to sign up.", true)
		return nil
	}
	if a.signup == nil {
		a.setStatus("Sign-up requested for "+creds.Email, false)
		return nil
	}
	a.submitting = true
	a.setStatus("Creating account...", false)
	return a.registerCmd(creds)
}

func (a *App) registerCmd(creds form.Credentials) tea.Cmd {
	ctx, signup := a.ctx, a.signup
	return func() tea.Msg {
		acct, err := signup.Register(ctx, creds)
		if err != nil {
			return errMsg{err}
		}
		return signedUpMsg{Account: acct}
	}
}

func (a *App) updateFocusedInput(msg tea.Msg) tea.Cmd {
	idx, ok := a.focusedInput()
	if !ok {
		return nil
	}
	if km, isKey := msg.(tea.KeyMsg); isKey && isInsertion(km) && a.clearOnInsert[idx] {
		a.inputs[idx].SetValue("")
	}
	if _, isKey := msg.(tea.KeyMsg); isKey {
		a.clearOnInsert[idx] = false
	}

	before := a.inputs[idx].Value()
	var cmd tea.Cmd
	a.inputs[idx], cmd = a.inputs[idx].Update(msg)
	if after := a.inputs[idx].Value(); after != before {
		a.form.Reactor(fieldKinds[idx]).Send(field.Edit(fieldKinds[idx], after))
	}
	return cmd
}

// isInsertion reports whether m inserts text. Space arrives as its own key type.
func isInsertion(m tea.KeyMsg) bool {
	return m.Type == tea.KeyRunes || m.Type == tea.KeySpace
}

// endEditing reports the focused field as done; the coordinator may move
// focus in response.
func (a *App) endEditing() {
	if idx, ok := a.focusedInput(); ok {
		a.form.EndEditing(fieldKinds[idx])
	}
}

func (a *App) focusedInput() (int, bool) {
	switch a.focus {
	case focusEmail:
		return 0, true
	case focusPassword:
		return 1, true
	default:
		return 0, false
	}
}

// moveFocus ends editing and steps focus. A forward step that the
// coordinator already redirected is not applied twice.
func (a *App) moveFocus(step int) {
	from := a.focus
	a.endEditing()
	if step > 0 && a.focus != from {
		return
	}
	a.setFocus(nextFocus(from, step))
}

func nextFocus(from focusTarget, step int) focusTarget {
	const stops = int(focusNone)
	cur := int(from)
	if from == focusNone {
		cur = stops - 1
		if step < 0 {
			cur = 0
		}
	}
	return focusTarget(((cur+step)%stops + stops) % stops)
}

func (a *App) setFocus(target focusTarget) {
	if target == a.focus {
		return
	}
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	a.focus = target
	if idx, ok := a.focusedInput(); ok {
		a.inputs[idx].Focus()
		traits := field.TraitsFor(fieldKinds[idx])
		a.clearOnInsert[idx] = traits.ClearsOnInsertion && a.inputs[idx].Value() != ""
	}
	a.syncInset()
}

// syncInset hands the footer height to the form. The footer's return-key
// label follows focus, so this runs on resize and on every focus change.
func (a *App) syncInset() {
	if rows := lipgloss.Height(a.renderFooter()); rows != a.form.Inset() {
		a.form.SetInset(rows)
	}
}

func (a *App) refreshSuggestion() {
	a.suggestion = ""
	if !a.cfg.UI.Suggest || !a.states[0].Valid() {
		return
	}
	if s, ok := service.SuggestEmail(a.form.Email().Text()); ok {
		a.suggestion = s
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func describeErr(err error) string {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return "That email is already registered."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Enter a valid email and password to sign up."
	case errors.Is(err, service.ErrPasswordTooLong):
		return "That password is too long."
	default:
		return "Sign-up failed: " + err.Error()
	}
}

type signedUpMsg struct {
	Account repository.Account
}

type errMsg struct{ error }

func (a *App) View() string {
	body := a.renderForm()
	footer := a.renderFooter()
	top, bottom := verticalPadding(a.height, a.inset, lipgloss.Height(body))

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(body)
	b.WriteString(strings.Repeat("\n", bottom))
	b.WriteString("\n")
	b.WriteString(footer)
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, b.String())
	}
	return b.String()
}

func (a *App) renderForm() string {
	sections := []string{titleStyle.Render(a.cfg.UI.Title), ""}
	for i := range a.inputs {
		sections = append(sections, a.renderField(i))
	}
	sections = append(sections, "", a.renderButton())
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = statusErrStyle
		}
		sections = append(sections, "", style.Render(a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderField(idx int) string {
	underline := underlineStyle
	if f, ok := a.focusedInput(); ok && f == idx {
		underline = underlineActive
	}
	lines := []string{
		a.inputs[idx].View(),
		underline.Render(strings.Repeat("─", fieldWidth)),
	}
	st := a.states[idx]
	if st.Message != nil {
		style := invalidStyle
		if st.Valid() {
			style = validStyle
		}
		lines = append(lines, style.Render(*st.Message))
	} else {
		lines = append(lines, "")
	}
	if idx == 0 && a.suggestion != "" {
		lines = append(lines, hintStyle.Render("Did you mean "+a.suggestion+"?"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderButton() string {
	label := a.cfg.UI.ButtonLabel
	if a.submitting {
		label += "..."
	}
	style := buttonDisabledStyle
	if a.submitEnabled {
		style = buttonStyle
	}
	marker := "  "
	if a.focus == focusButton {
		marker = "▶ "
	}
	return marker + style.Render(label)
}

func (a *App) renderFooter() string {
	ret := a.keys.Return
	if idx, ok := a.focusedInput(); ok {
		ret.SetHelp("enter", string(field.TraitsFor(fieldKinds[idx]).ReturnKey))
	} else if a.focus == focusButton {
		ret.SetHelp("enter", "submit")
	}
	return footerStyle.Render(helpLine(a.keys.Next, a.keys.Prev, ret, a.keys.Dismiss, a.keys.Quit))
}
