// Package command parses input lines and dispatches them to handlers that
// read or mutate a contact directory.
package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/smileynet/contactbook/internal/contact"
)

// Fixed replies for the error kinds handlers may return.
const (
	MsgMissingArguments = "Missing arguments."
	MsgContactNotFound  = "Contact not found."
	MsgInvalidCommand   = "Invalid command."
)

var (
	// ErrMissingArguments means a handler got fewer positional arguments than it needs.
	ErrMissingArguments = errors.New("command: missing arguments")
	// ErrContactNotFound means a handler needed an existing record and found none.
	ErrContactNotFound = errors.New("command: contact not found")
)

// Env is the state every handler operates on.
type Env struct {
	Book   *contact.Directory
	Now    func() time.Time
	Window int // birthday window in days
}

// NewEnv creates an Env over book using the wall clock and the default window.
func NewEnv(book *contact.Directory) *Env {
	return &Env{Book: book, Now: time.Now, Window: contact.DefaultWindow}
}

// Handler executes one command and returns the reply text.
type Handler func(args []string, env *Env) (string, error)

// Info describes a registered command for help output.
type Info struct {
	Name    string
	Usage   string
	Summary string
}

// Registry maps command names to handlers and preserves registration order
// for help output. It is not safe for concurrent use; registration should
// happen at startup.
type Registry struct {
	handlers map[string]Handler
	infos    []Info
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a named handler. Overwrites the handler if name already exists.
// Panics if name is empty or h is nil (programmer error).
func (r *Registry) Register(info Info, h Handler) {
	if info.Name == "" {
		panic("command: Register called with empty name")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	if _, exists := r.handlers[info.Name]; !exists {
		r.infos = append(r.infos, info)
	} else {
		for i := range r.infos {
			if r.infos[i].Name == info.Name {
				r.infos[i] = info
			}
		}
	}
	r.handlers[info.Name] = h
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Info {
	out := make([]Info, len(r.infos))
	copy(out, r.infos)
	return out
}

// Dispatch runs the handler registered under name. Handler errors never
// escape: they are converted to their user-facing reply and failed is set.
func (r *Registry) Dispatch(name string, args []string, env *Env) (reply string, failed bool) {
	h, ok := r.handlers[name]
	if !ok {
		return MsgInvalidCommand, true
	}
	out, err := h(args, env)
	if err != nil {
		return ErrorReply(err), true
	}
	return out, false
}

// ErrorReply maps a handler error to the one-line text shown to the user.
func ErrorReply(err error) string {
	var ie *contact.InputError
	switch {
	case errors.As(err, &ie):
		return ie.Msg
	case errors.Is(err, ErrMissingArguments):
		return MsgMissingArguments
	case errors.Is(err, ErrContactNotFound):
		return MsgContactNotFound
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// requireArgs returns ErrMissingArguments when args has fewer than n entries.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("need %d, got %d: %w", n, len(args), ErrMissingArguments)
	}
	return nil
}
