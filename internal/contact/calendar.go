package contact

import "time"

// civil truncates t to its calendar date in UTC so day arithmetic is never
// skewed by time of day or DST transitions.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// occurrence returns b's month/day in the given year. February 29 maps to
// February 28 when year is not a leap year.
func occurrence(b Birthday, year int) time.Time {
	m, d := b.Month(), b.Day()
	if m == time.February && d == 29 && !isLeap(year) {
		d = 28
	}
	return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
}

// nextOccurrence returns the first occurrence of b on or after today.
func nextOccurrence(b Birthday, today time.Time) time.Time {
	today = civil(today)
	next := occurrence(b, today.Year())
	if next.Before(today) {
		next = occurrence(b, today.Year()+1)
	}
	return next
}

// daysUntil counts whole days from today to b's next occurrence.
func daysUntil(b Birthday, today time.Time) int {
	return int(nextOccurrence(b, today).Sub(civil(today)).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
