// Package repl runs the read-eval-print loop over a command.Session, either
// as plain text lines or as a Bubble Tea terminal UI.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/contactbook/internal/command"
)

// Frontend drives a session until the user exits or input ends.
type Frontend interface {
	Run(ctx context.Context) error
}

// Options configures frontend creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
	Prompt     string    // Input prompt (default: command.Prompt).
}

// New returns a TUI frontend when Out is a TTY, or a plain line loop
// otherwise. ForcePlain overrides TTY detection.
func New(s *command.Session, opts Options) Frontend {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = command.Prompt
	}

	if opts.ForcePlain || !isTTY(opts.Out) {
		return &Plain{session: s, in: opts.In, out: opts.Out, prompt: opts.Prompt}
	}
	return &TUI{session: s, in: opts.In, out: opts.Out, prompt: opts.Prompt}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Plain reads one command per line and writes each reply on its own line.
type Plain struct {
	session *command.Session
	in      io.Reader
	out     io.Writer
	prompt  string
	resumed bool // banner already shown by another front end
}

// Run loops until an exit command, end of input, or ctx cancellation.
// End of input is treated like an exit command.
func (p *Plain) Run(ctx context.Context) error {
	if !p.resumed {
		_, _ = fmt.Fprintln(p.out, command.MsgWelcome)
	}

	sc := bufio.NewScanner(p.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(p.out, p.prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("repl: reading input: %w", err)
			}
			_, _ = fmt.Fprintln(p.out)
			_, _ = fmt.Fprintln(p.out, command.MsgFarewell)
			return nil
		}

		reply := p.session.Execute(sc.Text())
		if reply.Text != "" {
			_, _ = fmt.Fprintln(p.out, reply.Text)
		}
		if reply.Exit {
			return nil
		}
	}
}

// TUI runs the session inside a Bubble Tea program.
// Falls back to Plain if the program fails; the fallback continues the same
// session without repeating the banner.
type TUI struct {
	session *command.Session
	in      io.Reader
	out     io.Writer
	prompt  string
}

// Run starts the Bubble Tea program and blocks until it exits.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(t.session, WithPrompt(t.prompt))
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return t.fallback().Run(ctx)
	}
	return nil
}

func (t *TUI) fallback() *Plain {
	return &Plain{session: t.session, in: t.in, out: t.out, prompt: t.prompt, resumed: true}
}
