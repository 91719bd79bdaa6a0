package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/session"
	"github.com/footprint-tools/brig/internal/ui"
)

// NewSession returns a session for user whose output is captured in the
// returned buffer. Pager and styling are off.
func NewSession(t *testing.T, user domain.User) (*session.Session, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return session.New(user, ui.NewWriterTo(&buf, ui.WithPagerDisabled())), &buf
}

// MapConfig is an in-memory domain.ConfigProvider.
type MapConfig map[string]string

func (m MapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapConfig) GetAll() (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

func (m MapConfig) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MapConfig) Unset(key string) error {
	delete(m, key)
	return nil
}

// Run executes input on d for s and returns what s printed while it ran,
// along with the result and error.
func Run(t *testing.T, d *dispatchers.Dispatcher, s *session.Session, buf *bytes.Buffer, input string) (string, int, error) {
	t.Helper()

	buf.Reset()
	result, err := d.ExecuteInput(context.Background(), input, s)
	return buf.String(), result, err
}
