package contact

import (
	"strings"
	"time"
)

// DefaultWindow is the number of days ahead UpcomingBirthdays looks by default.
const DefaultWindow = 7

// Directory maps contact names to records and remembers insertion order.
// It is not safe for concurrent use.
type Directory struct {
	records map[string]*Record
	order   []string
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. Replacing an existing name keeps the
// name's original position.
func (d *Directory) AddRecord(r *Record) {
	key := string(r.Name())
	if _, exists := d.records[key]; !exists {
		d.order = append(d.order, key)
	}
	d.records[key] = r
}

// Find looks up a record by exact, case-sensitive name.
func (d *Directory) Find(name string) (*Record, bool) {
	r, ok := d.records[name]
	return r, ok
}

// Len returns the number of stored records.
func (d *Directory) Len() int { return len(d.order) }

// Records returns all records in insertion order.
func (d *Directory) Records() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.records[key])
	}
	return out
}

// UpcomingBirthdays returns, in insertion order, the records whose next
// birthday falls between today and today+window days inclusive.
func (d *Directory) UpcomingBirthdays(today time.Time, window int) []*Record {
	var out []*Record
	for _, r := range d.Records() {
		days, ok := r.DaysToNextBirthday(today)
		if ok && days <= window {
			out = append(out, r)
		}
	}
	return out
}

func (d *Directory) String() string {
	lines := make([]string, 0, len(d.order))
	for _, r := range d.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
