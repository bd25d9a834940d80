package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
)

// scriptedDriver answers from a fixed list, re-asking while the validator
// rejects, the way survey does.
type scriptedDriver struct {
	answers  []string
	rejected []string
	err      error
}

func (d *scriptedDriver) next(cfg InputConfig) (string, error) {
	for len(d.answers) > 0 {
		ans := d.answers[0]
		d.answers = d.answers[1:]
		if cfg.Validator == nil {
			return ans, nil
		}
		if err := cfg.Validator(ans); err != nil {
			d.rejected = append(d.rejected, err.Error())
			continue
		}
		return ans, nil
	}
	if d.err != nil {
		return "", d.err
	}
	return "", errors.New("script exhausted")
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return d.next(cfg)
}

func (d *scriptedDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	return d.next(cfg)
}

func TestRunCollectsValidCredentials(t *testing.T) {
	f := form.New()
	var advanced int
	f.OnFocusAdvance(func(field.Kind) { advanced++ })

	d := &scriptedDriver{answers: []string{"", "not-an-email", "user@example.com", "123456", "1234567"}}
	creds, err := Run(context.Background(), f, d)
	require.NoError(t, err)
	require.Equal(t, form.Credentials{Email: "user@example.com", Password: "1234567"}, creds)
	require.Equal(t, []string{
		"a value is required",
		"Please enter a valid email address",
		"Please enter a valid password",
	}, d.rejected)
	require.Equal(t, 1, advanced)
	require.True(t, f.SubmitEnabled())
}

func TestRunPropagatesAbort(t *testing.T) {
	f := form.New()
	d := &scriptedDriver{answers: []string{"user@example.com"}, err: ErrAborted}
	_, err := Run(context.Background(), f, d)
	require.ErrorIs(t, err, ErrAborted)
	require.False(t, f.SubmitEnabled())
}
