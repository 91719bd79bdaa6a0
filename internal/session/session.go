// Package session holds the source a command runs for: who runs it, with
// which permission level, where its output goes and which variables it sees.
package session

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/usage"
)

// Session is the command source. Redirects derive new sessions with As;
// derived sessions share the output, the session ID, the variable scopes and
// the quit flag.
type Session struct {
	ID    uuid.UUID
	User  domain.User
	Out   domain.OutputWriter
	scope *Scopes
	quit  *atomic.Bool
}

// New starts a session for user writing to out.
func New(user domain.User, out domain.OutputWriter) *Session {
	return &Session{
		ID:    uuid.New(),
		User:  user,
		Out:   out,
		scope: NewScopes(),
		quit:  new(atomic.Bool),
	}
}

// As returns a session for another user sharing everything else.
func (s *Session) As(user domain.User) *Session {
	return &Session{ID: s.ID, User: user, Out: s.Out, scope: s.scope, quit: s.quit}
}

// Quit asks whoever drives the session to stop after the current command.
func (s *Session) Quit() {
	s.quit.Store(true)
}

// QuitRequested reports whether Quit was called on this session or one
// derived from it.
func (s *Session) QuitRequested() bool {
	return s.quit.Load()
}

// Name is the user name.
func (s *Session) Name() string {
	return s.User.Name
}

// Level is the user's permission level.
func (s *Session) Level() int {
	return s.User.Level
}

// Vars returns the variables of the session's user.
func (s *Session) Vars() *Vars {
	return s.scope.For(s.User.Name)
}

// Printf writes to the session output.
func (s *Session) Printf(format string, args ...any) {
	_, _ = s.Out.Printf(format, args...)
}

// Println writes a line to the session output.
func (s *Session) Println(args ...any) {
	_, _ = s.Out.Println(args...)
}

// Writer returns the session output as a plain writer.
func (s *Session) Writer() io.Writer {
	return s.Out
}

func (s *Session) String() string {
	return fmt.Sprintf("%s(level %d)", s.User.Name, s.User.Level)
}

// From returns the session a command runs for.
func From(c *dispatchers.CommandContext) (*Session, error) {
	s, ok := c.Source().(*Session)
	if !ok {
		return nil, fmt.Errorf("session: command source is %T, not *session.Session", c.Source())
	}
	return s, nil
}

// HasLevel is a requirement passing sessions at level or above.
func HasLevel(level int) dispatchers.Requirement {
	return func(source any) bool {
		s, ok := source.(*Session)
		return ok && s.User.Level >= level
	}
}

// Require fails with a permission error unless s is at level or above.
func Require(s *Session, level int) error {
	if s.User.Level < level {
		return usage.PermissionDenied(s.User.Name, level)
	}
	return nil
}

// Scopes holds one variable set per user.
type Scopes struct {
	mu    sync.Mutex
	users map[string]*Vars
}

func NewScopes() *Scopes {
	return &Scopes{users: make(map[string]*Vars)}
}

// For returns the variables of user, creating them on first use.
func (s *Scopes) For(user string) *Vars {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.users[user]
	if !ok {
		v = &Vars{values: make(map[string]int)}
		s.users[user] = v
	}
	return v
}

// Vars is a set of named integers. It is safe for concurrent use.
type Vars struct {
	mu     sync.RWMutex
	values map[string]int
}

func (v *Vars) Get(name string) (int, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	value, ok := v.values[name]
	return value, ok
}

func (v *Vars) Set(name string, value int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[name] = value
}

// Add adds amount to name, starting from 0, and returns the new value.
func (v *Vars) Add(name string, amount int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[name] += amount
	return v.values[name]
}

// Unset removes name and reports whether it was set.
func (v *Vars) Unset(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.values[name]
	delete(v.values, name)
	return ok
}

// Names returns the variable names in sorted order.
func (v *Vars) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Sorted(maps.Keys(v.values))
}
