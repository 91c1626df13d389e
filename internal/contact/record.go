package contact

import (
	"fmt"
	"strings"
	"time"
)

// Record is one contact: a fixed name, an ordered phone list (duplicates
// allowed), and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates s and appends it.
func (r *Record) AddPhone(s string) error {
	p, err := ValidatePhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to s. Removing an absent phone is a no-op.
func (r *Record) RemovePhone(s string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if string(p) != s {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to old with next. The record is
// left unchanged if next is invalid or old is not present.
func (r *Record) EditPhone(old, next string) error {
	p, err := ValidatePhone(next)
	if err != nil {
		return err
	}
	i := r.phoneIndex(old)
	if i < 0 {
		return invalid(fmt.Sprintf("Phone number %s not found.", old))
	}
	r.phones[i] = p
	return nil
}

func (r *Record) phoneIndex(s string) int {
	for i, p := range r.phones {
		if string(p) == s {
			return i
		}
	}
	return -1
}

// AddBirthday validates s and sets or overwrites the birthday.
func (r *Record) AddBirthday(s string) error {
	b, err := ValidateBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// DaysToNextBirthday returns the number of days from today until the next
// occurrence of the birthday on or after today. ok is false when no birthday
// is set.
func (r *Record) DaysToNextBirthday(today time.Time) (days int, ok bool) {
	if r.birthday == nil {
		return 0, false
	}
	return daysUntil(*r.birthday, today), true
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = string(p)
	}
	birthday := "N/A"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
