package command

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Banner and farewell printed by the front ends.
const (
	MsgWelcome  = "Welcome to the assistant bot!"
	MsgFarewell = "Good bye!"
	Prompt      = "Enter a command: "
)

// Reply is the outcome of one input line.
type Reply struct {
	Text   string // empty for blank input
	Failed bool   // the command was rejected
	Exit   bool   // the loop should stop after printing Text
}

// Parse splits a line on whitespace. The first field, lower-cased, is the
// command; the remaining fields are its arguments. A blank line yields "".
func Parse(line string) (cmd string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// IsExit reports whether cmd ends the session.
func IsExit(cmd string) bool {
	return cmd == "close" || cmd == "exit"
}

// Session executes input lines one at a time against a single Env.
type Session struct {
	ID       string
	registry *Registry
	env      *Env
	log      *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for per-command tracing.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithRegistry replaces the default command set.
func WithRegistry(r *Registry) SessionOption {
	return func(s *Session) { s.registry = r }
}

// NewSession creates a Session over env with the default registry.
func NewSession(env *Env, opts ...SessionOption) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		registry: DefaultRegistry(),
		env:      env,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("session", s.ID)
	return s
}

// Registry returns the command set the session dispatches to.
func (s *Session) Registry() *Registry { return s.registry }

// Execute runs one line to completion.
func (s *Session) Execute(line string) Reply {
	cmd, args := Parse(line)
	switch {
	case cmd == "":
		return Reply{}
	case IsExit(cmd):
		s.log.Debug("session closed", "command", cmd)
		return Reply{Text: MsgFarewell, Exit: true}
	}

	text, failed := s.registry.Dispatch(cmd, args, s.env)
	if failed {
		s.log.Info("command rejected", "command", cmd, "args", len(args), "reply", text)
	} else {
		s.log.Debug("command executed", "command", cmd, "args", len(args), "contacts", s.env.Book.Len())
	}
	return Reply{Text: text, Failed: failed}
}
