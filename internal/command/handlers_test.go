package command

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/smileynet/contactbook/internal/contact"
)

func testEnv(today time.Time) *Env {
	return &Env{
		Book:   contact.NewDirectory(),
		Now:    func() time.Time { return today },
		Window: contact.DefaultWindow,
	}
}

func run(t *testing.T, env *Env, line string) (string, bool) {
	t.Helper()
	cmd, args := Parse(line)
	return DefaultRegistry().Dispatch(cmd, args, env)
}

var fixedToday = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func TestAddContact(t *testing.T) {
	t.Run("added then updated", func(t *testing.T) {
		env := testEnv(fixedToday)
		if got, _ := run(t, env, "add Alice 1234567890"); got != MsgContactAdded {
			t.Errorf("first add = %q, want %q", got, MsgContactAdded)
		}
		if got, _ := run(t, env, "add Alice 1234567890"); got != MsgContactUpdated {
			t.Errorf("second add = %q, want %q", got, MsgContactUpdated)
		}
		rec, _ := env.Book.Find("Alice")
		if n := len(rec.Phones()); n != 2 {
			t.Errorf("phones = %d, want 2 (duplicates kept)", n)
		}
	})

	t.Run("with birthday", func(t *testing.T) {
		env := testEnv(fixedToday)
		if got, failed := run(t, env, "add Bob 1234567890 01.02.1990"); failed || got != MsgContactAdded {
			t.Fatalf("add = %q, failed = %v", got, failed)
		}
		if got, _ := run(t, env, "show-birthday Bob"); got != "Bob: 01.02.1990" {
			t.Errorf("show-birthday = %q", got)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		env := testEnv(fixedToday)
		got, failed := run(t, env, "add Alice")
		if !failed || got != MsgMissingArguments {
			t.Errorf("add = %q, failed = %v, want %q", got, failed, MsgMissingArguments)
		}
	})

	t.Run("invalid phone creates nothing", func(t *testing.T) {
		env := testEnv(fixedToday)
		got, failed := run(t, env, "add Alice 12345")
		if !failed || got != "Phone number must consist of exactly 10 digits." {
			t.Errorf("add = %q, failed = %v", got, failed)
		}
		if env.Book.Len() != 0 {
			t.Errorf("directory has %d records, want 0", env.Book.Len())
		}
	})

	t.Run("invalid birthday leaves existing record untouched", func(t *testing.T) {
		env := testEnv(fixedToday)
		run(t, env, "add Alice 1234567890")
		got, failed := run(t, env, "add Alice 0000000000 31.02.1990")
		if !failed || got != "Invalid date format. Use DD.MM.YYYY." {
			t.Errorf("add = %q, failed = %v", got, failed)
		}
		if got, _ := run(t, env, "phone Alice"); got != "Alice: 1234567890" {
			t.Errorf("phone = %q, want original phone only", got)
		}
	})
}

func TestChangeContact(t *testing.T) {
	t.Run("unknown contact", func(t *testing.T) {
		env := testEnv(fixedToday)
		got, failed := run(t, env, "change Bob 0000000000 1111111111")
		if !failed || got != MsgContactNotFound {
			t.Errorf("change = %q, failed = %v, want %q", got, failed, MsgContactNotFound)
		}
	})

	t.Run("replaces phone", func(t *testing.T) {
		env := testEnv(fixedToday)
		run(t, env, "add Alice 1234567890")
		if got, _ := run(t, env, "change Alice 1234567890 0000000000"); got != MsgPhoneUpdated {
			t.Errorf("change = %q", got)
		}
		if got, _ := run(t, env, "phone Alice"); got != "Alice: 0000000000" {
			t.Errorf("phone = %q", got)
		}
		got, failed := run(t, env, "change Alice 1234567890 1111111111")
		if !failed || got != "Phone number 1234567890 not found." {
			t.Errorf("second change = %q, failed = %v", got, failed)
		}
	})

	t.Run("missing arguments", func(t *testing.T) {
		env := testEnv(fixedToday)
		run(t, env, "add Alice 1234567890")
		if got, _ := run(t, env, "change Alice 1234567890"); got != MsgMissingArguments {
			t.Errorf("change = %q, want %q", got, MsgMissingArguments)
		}
	})
}

func TestShowPhone(t *testing.T) {
	env := testEnv(fixedToday)
	run(t, env, "add Alice 1234567890")
	if got, _ := run(t, env, "phone Alice"); got != "Alice: 1234567890" {
		t.Errorf("phone = %q, want %q", got, "Alice: 1234567890")
	}
	run(t, env, "add Alice 0987654321")
	if got, _ := run(t, env, "phone Alice"); got != "Alice: 1234567890, 0987654321" {
		t.Errorf("phone = %q", got)
	}
	if got, _ := run(t, env, "phone alice"); got != MsgContactNotFound {
		t.Errorf("phone alice = %q, want %q", got, MsgContactNotFound)
	}
	if got, _ := run(t, env, "phone"); got != MsgMissingArguments {
		t.Errorf("phone = %q, want %q", got, MsgMissingArguments)
	}
}

func TestRemovePhone(t *testing.T) {
	env := testEnv(fixedToday)
	run(t, env, "add Alice 1234567890")
	run(t, env, "add Alice 0987654321")
	if got, _ := run(t, env, "remove-phone Alice 1234567890"); got != MsgPhoneRemoved {
		t.Errorf("remove-phone = %q", got)
	}
	if got, _ := run(t, env, "phone Alice"); got != "Alice: 0987654321" {
		t.Errorf("phone = %q", got)
	}
	if got, _ := run(t, env, "remove-phone Nobody 1234567890"); got != MsgContactNotFound {
		t.Errorf("remove-phone unknown = %q", got)
	}
}

func TestShowAll(t *testing.T) {
	env := testEnv(fixedToday)
	if got, _ := run(t, env, "all"); got != MsgNoContacts {
		t.Errorf("all on empty = %q, want %q", got, MsgNoContacts)
	}
	run(t, env, "add Alice 1234567890 05.05.1995")
	run(t, env, "add Bob 0987654321")
	want := "Contact name: Alice, phones: 1234567890, birthday: 05.05.1995\n" +
		"Contact name: Bob, phones: 0987654321, birthday: N/A"
	if got, _ := run(t, env, "all"); got != want {
		t.Errorf("all = %q, want %q", got, want)
	}
}

func TestBirthdayCommands(t *testing.T) {
	t.Run("add-birthday requires contact", func(t *testing.T) {
		env := testEnv(fixedToday)
		if got, _ := run(t, env, "add-birthday Alice 01.01.2000"); got != MsgContactNotFound {
			t.Errorf("add-birthday = %q", got)
		}
		if got, _ := run(t, env, "add-birthday Alice"); got != MsgMissingArguments {
			t.Errorf("add-birthday = %q", got)
		}
	})

	t.Run("show-birthday without birthday", func(t *testing.T) {
		env := testEnv(fixedToday)
		run(t, env, "add Alice 1234567890")
		if got, _ := run(t, env, "show-birthday Alice"); got != MsgNoBirthday {
			t.Errorf("show-birthday = %q, want %q", got, MsgNoBirthday)
		}
		if got, _ := run(t, env, "add-birthday Alice 1990-01-01"); got != "Invalid date format. Use DD.MM.YYYY." {
			t.Errorf("add-birthday = %q", got)
		}
		if got, _ := run(t, env, "add-birthday Alice 20.10.1990"); got != MsgBirthdayAdded {
			t.Errorf("add-birthday = %q", got)
		}
		if got, _ := run(t, env, "show-birthday Alice"); got != "Alice: 20.10.1990" {
			t.Errorf("show-birthday = %q", got)
		}
		if got, _ := run(t, env, "show-birthday Nobody"); got != MsgContactNotFound {
			t.Errorf("show-birthday unknown = %q", got)
		}
	})

	t.Run("upcoming", func(t *testing.T) {
		env := testEnv(fixedToday)
		if got, _ := run(t, env, "birthdays"); got != "No birthdays in the next 7 days." {
			t.Errorf("birthdays on empty = %q", got)
		}
		run(t, env, "add Alice 1234567890 23.10.1990")
		run(t, env, "add Bob 1234567890 24.10.1990")
		run(t, env, "add Carol 1234567890 16.10.2001")
		if got, _ := run(t, env, "birthdays"); got != "Alice: 23.10.1990\nCarol: 16.10.2001" {
			t.Errorf("birthdays = %q", got)
		}
	})
}

func TestDispatch(t *testing.T) {
	t.Run("unknown command", func(t *testing.T) {
		env := testEnv(fixedToday)
		got, failed := run(t, env, "frobnicate Alice")
		if !failed || got != MsgInvalidCommand {
			t.Errorf("dispatch = %q, failed = %v", got, failed)
		}
		if env.Book.Len() != 0 {
			t.Error("unknown command modified the directory")
		}
	})

	t.Run("command is case-insensitive", func(t *testing.T) {
		env := testEnv(fixedToday)
		if got, _ := run(t, env, "HeLLo"); got != MsgGreeting {
			t.Errorf("HeLLo = %q, want %q", got, MsgGreeting)
		}
	})

	t.Run("help lists every command", func(t *testing.T) {
		env := testEnv(fixedToday)
		got, _ := run(t, env, "help")
		for _, s := range DefaultRegistry().Commands() {
			if !strings.Contains(got, s.Name) {
				t.Errorf("help output missing %q", s.Name)
			}
		}
		if !strings.Contains(got, "close | exit") {
			t.Error("help output missing exit commands")
		}
	})
}

func TestErrorReply(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"input error", &contact.InputError{Msg: "bad phone"}, "bad phone"},
		{"wrapped missing", requireArgs(nil, 1), MsgMissingArguments},
		{"wrapped not found", errors.Join(errors.New("x"), ErrContactNotFound), MsgContactNotFound},
		{"other", errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorReply(tt.err); got != tt.want {
				t.Errorf("ErrorReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("re-register keeps position", func(t *testing.T) {
		r := NewRegistry()
		r.Register(Info{Name: "a"}, Greet)
		r.Register(Info{Name: "b"}, Greet)
		r.Register(Info{Name: "a", Summary: "again"}, ShowAll)
		infos := r.Commands()
		if len(infos) != 2 || infos[0].Name != "a" || infos[0].Summary != "again" {
			t.Errorf("Commands() = %+v", infos)
		}
	})

	t.Run("empty name panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewRegistry().Register(Info{}, Greet)
	})

	t.Run("nil handler panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewRegistry().Register(Info{Name: "x"}, nil)
	})
}
