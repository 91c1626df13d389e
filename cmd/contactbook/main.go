package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contactbook/internal/command"
	"github.com/smileynet/contactbook/internal/config"
	"github.com/smileynet/contactbook/internal/contact"
	"github.com/smileynet/contactbook/internal/logger"
	"github.com/smileynet/contactbook/internal/repl"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// CLI is the top-level command structure for contactbook.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Repl     ReplCmd          `cmd:"" default:"withargs" help:"Start the interactive assistant (default)."`
	Commands CommandsCmd      `cmd:"" help:"List the commands the assistant understands."`
}

// ReplCmd runs the interactive assistant. Flag defaults come from the
// layered config, so a flag given on the command line always wins.
type ReplCmd struct {
	Plain     bool   `help:"Force plain text output even if stdout is a TTY." default:"${plain}"`
	Window    int    `help:"Days ahead the birthdays command looks." default:"${window}"`
	LogLevel  string `help:"Diagnostic log level (debug, info, warn, error)." default:"${log_level}"`
	LogFile   string `help:"Write diagnostic logs to this file." default:"${log_file}"`
	LogFormat string `help:"Diagnostic log format (text, json)." default:"${log_format}"`
}

// CommandsCmd prints the assistant's command table.
type CommandsCmd struct{}

// setupError marks failures that happen before the session starts.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }

func (e *setupError) Unwrap() error { return e.err }

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contactbook/config.yaml"),
		".contactbook.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configVars exposes config values as kong flag defaults.
func configVars(cfg *config.Config) kong.Vars {
	return kong.Vars{
		"plain":      strconv.FormatBool(cfg.UI.Plain),
		"window":     strconv.Itoa(cfg.Birthdays.WindowDays),
		"log_level":  cfg.Log.Level,
		"log_file":   cfg.Log.File,
		"log_format": cfg.Log.Format,
	}
}

// Run executes the repl command.
func (r *ReplCmd) Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return r.run(ctx, cfg, os.Stdin, os.Stdout)
}

// run wires config, logging, session and frontend, enabling testable wiring.
func (r *ReplCmd) run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	// Apply CLI flag overrides.
	cfg.UI.Plain = r.Plain
	cfg.Birthdays.WindowDays = r.Window
	cfg.Log.Level = r.LogLevel
	cfg.Log.File = r.LogFile
	cfg.Log.Format = r.LogFormat

	if err := cfg.Validate(); err != nil {
		return &setupError{fmt.Errorf("repl: %w", err)}
	}

	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return &setupError{fmt.Errorf("repl: %w", err)}
	}
	defer closeLog() //nolint:errcheck // nothing useful to do on a failed log close

	env := command.NewEnv(contact.NewDirectory())
	env.Window = cfg.Birthdays.WindowDays
	session := command.NewSession(env, command.WithLogger(log))
	log.Info("session started", "session", session.ID, "window_days", env.Window, "version", version)

	frontend := repl.New(session, repl.Options{
		In:         in,
		Out:        out,
		ForcePlain: cfg.UI.Plain,
		Prompt:     cfg.UI.Prompt,
	})
	if err := frontend.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("repl: %w", err)
	}
	return nil
}

// Run executes the commands command.
func (c *CommandsCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *CommandsCmd) run(w io.Writer) error {
	_, err := fmt.Fprintln(w, command.Help(command.DefaultRegistry().Commands()))
	return err
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitSetup)
	}

	var cli CLI
	vars := configVars(cfg)
	vars["version"] = version + " " + commit + " " + date
	ctx := kong.Parse(&cli,
		kong.Name("contactbook"),
		kong.Description("An in-memory contact book with birthday reminders."),
		vars,
		kong.Bind(cfg),
	)
	err = ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
