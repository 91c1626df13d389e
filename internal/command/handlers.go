package command

import (
	"fmt"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

// Replies for successful commands.
const (
	MsgGreeting       = "How can I help you?"
	MsgContactAdded   = "Contact added."
	MsgContactUpdated = "Contact updated."
	MsgPhoneUpdated   = "Phone number updated."
	MsgPhoneRemoved   = "Phone number removed."
	MsgBirthdayAdded  = "Birthday added."
	MsgNoBirthday     = "No birthday found for this contact."
	MsgNoContacts     = "No contacts found."
)

// DefaultRegistry returns a Registry with every built-in command.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Info{Name: "hello", Summary: "Greet the bot"}, Greet)
	r.Register(Info{Name: "add", Usage: "<name> <phone> [DD.MM.YYYY]", Summary: "Add a contact or a phone to an existing one"}, AddContact)
	r.Register(Info{Name: "change", Usage: "<name> <old phone> <new phone>", Summary: "Replace a phone number"}, ChangeContact)
	r.Register(Info{Name: "phone", Usage: "<name>", Summary: "Show a contact's phones"}, ShowPhone)
	r.Register(Info{Name: "remove-phone", Usage: "<name> <phone>", Summary: "Remove a phone number"}, RemovePhone)
	r.Register(Info{Name: "all", Summary: "Show all contacts"}, ShowAll)
	r.Register(Info{Name: "add-birthday", Usage: "<name> <DD.MM.YYYY>", Summary: "Set a contact's birthday"}, AddBirthday)
	r.Register(Info{Name: "show-birthday", Usage: "<name>", Summary: "Show a contact's birthday"}, ShowBirthday)
	r.Register(Info{Name: "birthdays", Summary: "List birthdays in the coming week"}, UpcomingBirthdays)
	r.Register(Info{Name: "help", Summary: "Show this list"}, func(_ []string, _ *Env) (string, error) {
		return Help(r.Commands()), nil
	})
	return r
}

// Help renders one line per command followed by the exit commands.
func Help(infos []Info) string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range infos {
		usage := c.Name
		if c.Usage != "" {
			usage += " " + c.Usage
		}
		fmt.Fprintf(&b, "\n  %-42s %s", usage, c.Summary)
	}
	fmt.Fprintf(&b, "\n  %-42s %s", "close | exit", "Leave the assistant")
	return b.String()
}

// Greet ignores its arguments.
func Greet(_ []string, _ *Env) (string, error) {
	return MsgGreeting, nil
}

// AddContact creates the record if absent, then adds the phone and the
// optional birthday. Both are validated before anything is stored.
func AddContact(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]
	if _, err := contact.ValidatePhone(phone); err != nil {
		return "", err
	}
	var birthday string
	if len(args) > 2 {
		birthday = args[2]
		if _, err := contact.ValidateBirthday(birthday); err != nil {
			return "", err
		}
	}

	msg := MsgContactUpdated
	rec, ok := env.Book.Find(name)
	if !ok {
		var err error
		if rec, err = contact.NewRecord(name); err != nil {
			return "", err
		}
		env.Book.AddRecord(rec)
		msg = MsgContactAdded
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if birthday != "" {
		if err := rec.AddBirthday(birthday); err != nil {
			return "", err
		}
	}
	return msg, nil
}

// ChangeContact replaces one phone of an existing record.
func ChangeContact(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	rec, err := find(env, args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return MsgPhoneUpdated, nil
}

// ShowPhone lists a record's phones, comma-joined.
func ShowPhone(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := find(env, args[0])
	if err != nil {
		return "", err
	}
	phones := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}
	return fmt.Sprintf("%s: %s", args[0], strings.Join(phones, ", ")), nil
}

// RemovePhone drops a phone from an existing record. Removing a phone the
// record does not have is not an error.
func RemovePhone(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := find(env, args[0])
	if err != nil {
		return "", err
	}
	rec.RemovePhone(args[1])
	return MsgPhoneRemoved, nil
}

// ShowAll lists every record in insertion order.
func ShowAll(_ []string, env *Env) (string, error) {
	if env.Book.Len() == 0 {
		return MsgNoContacts, nil
	}
	return env.Book.String(), nil
}

// AddBirthday sets the birthday of an existing record.
func AddBirthday(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	rec, err := find(env, args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return MsgBirthdayAdded, nil
}

// ShowBirthday prints a record's birthday as DD.MM.YYYY.
func ShowBirthday(args []string, env *Env) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	rec, err := find(env, args[0])
	if err != nil {
		return "", err
	}
	b, ok := rec.Birthday()
	if !ok {
		return MsgNoBirthday, nil
	}
	return fmt.Sprintf("%s: %s", args[0], b), nil
}

// UpcomingBirthdays lists records whose birthday falls within env.Window days.
func UpcomingBirthdays(_ []string, env *Env) (string, error) {
	upcoming := env.Book.UpcomingBirthdays(env.Now(), env.Window)
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days.", env.Window), nil
	}
	lines := make([]string, 0, len(upcoming))
	for _, rec := range upcoming {
		b, _ := rec.Birthday()
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Name(), b))
	}
	return strings.Join(lines, "\n"), nil
}

func find(env *Env, name string) (*contact.Record, error) {
	rec, ok := env.Book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrContactNotFound)
	}
	return rec, nil
}
