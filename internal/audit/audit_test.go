package audit

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/signup/internal/field"
	"github.com/jask/signup/internal/form"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLineQuotesValues(t *testing.T) {
	got := line("account.rejected", "email", "a@b.co", "error", `bad "input" here`)
	want := `account.rejected email=a@b.co error="bad \"input\" here"`
	if got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
	if got := line("submit.toggled", "enabled", ""); got != `submit.toggled enabled=""` {
		t.Fatalf("empty value line = %q", got)
	}
}

func TestAttachWritesFormEvents(t *testing.T) {
	var out lockedBuffer
	Hook(log.New(&out, "", 0))

	c := form.New()
	detach := Attach(context.Background(), c)
	defer detach()

	c.Email().Send(field.Edit(field.KindEmail, "user@example.com"))
	c.EndEditing(field.KindEmail)
	c.Password().Send(field.Edit(field.KindPassword, "correct horse"))
	_, err := c.RequestSubmit()
	require.NoError(t, err)

	wantLines := []string{
		"field.changed field=email status=valid",
		"focus.advanced field=password",
		"submit.toggled enabled=true",
		"submit.requested email=user@example.com",
	}
	require.Eventually(t, func() bool {
		got := out.String()
		for _, w := range wantLines {
			if !strings.Contains(got, w) {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
	require.NotContains(t, out.String(), "correct horse")
}
