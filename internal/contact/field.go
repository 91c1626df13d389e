// Package contact holds the in-memory contact model: validated fields,
// records, and the name-keyed directory with its birthday-window query.
package contact

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the only accepted birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// ErrInvalidInput is matched by every field validation failure.
var ErrInvalidInput = errors.New("contact: invalid input")

// InputError carries the user-facing message of a rejected field.
// It unwraps to ErrInvalidInput.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(msg string) error {
	return &InputError{Msg: msg}
}

// Tags for the field checks. "number" admits ASCII digits only, unlike
// "numeric" which also takes a sign.
const (
	nameRules     = "required"
	phoneRules    = "required,len=10,number"
	birthdayRules = "required,datetime=" + BirthdayLayout
)

var validate = validator.New()

// Name identifies a contact. The zero value is never produced by ValidateName.
type Name string

// Phone is a string of exactly 10 decimal digits.
type Phone string

// Birthday is a calendar date. Only month and day matter for window checks.
type Birthday struct {
	t time.Time
}

const msgBadBirthday = "Invalid date format. Use DD.MM.YYYY."

// ValidateName rejects the empty string.
func ValidateName(s string) (Name, error) {
	if err := validate.Var(s, nameRules); err != nil {
		return "", invalid("Name cannot be empty.")
	}
	return Name(s), nil
}

// ValidatePhone accepts exactly 10 ASCII digits.
func ValidatePhone(s string) (Phone, error) {
	if err := validate.Var(s, phoneRules); err != nil {
		return "", invalid("Phone number must consist of exactly 10 digits.")
	}
	return Phone(s), nil
}

// ValidateBirthday parses s as DD.MM.YYYY. Two-digit day and month and a
// four-digit year are required, and the result must be a real calendar date.
func ValidateBirthday(s string) (Birthday, error) {
	if err := validate.Var(s, birthdayRules); err != nil {
		return Birthday{}, invalid(msgBadBirthday)
	}
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, invalid(msgBadBirthday)
	}
	return Birthday{t: t}, nil
}

func (n Name) String() string { return string(n) }

func (p Phone) String() string { return string(p) }

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.t.Format(BirthdayLayout) }

// Month returns the birthday's month.
func (b Birthday) Month() time.Month { return b.t.Month() }

// Day returns the birthday's day of month.
func (b Birthday) Day() int { return b.t.Day() }

// Year returns the stored birth year.
func (b Birthday) Year() int { return b.t.Year() }
