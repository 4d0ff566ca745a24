package contacts

import (
	"fmt"
	"regexp"
	"time"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Phone is a validated phone number: exactly 10 decimal digits, no
// separators or country code. Immutable once constructed.
type Phone struct {
	value string
}

// ParsePhone validates raw and returns a Phone. No normalization is
// performed; the stored value is exactly the input.
func ParsePhone(raw string) (Phone, error) {
	if !phonePattern.MatchString(raw) {
		return Phone{}, fmt.Errorf("%w: phone number %q must be exactly 10 digits", ErrInvalidFormat, raw)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// BirthdayLayout is the fixed input and display format for birthdays:
// zero-padded day and month, four-digit year.
const BirthdayLayout = "02-01-2006"

// Birthday is a validated calendar date. Immutable once constructed.
// The zero value means "no birthday".
type Birthday struct {
	date time.Time
}

// ParseBirthday parses raw under the fixed DD-MM-YYYY layout. Invalid
// calendar dates (e.g. 31-02-2000) are rejected. No range check against
// today is applied, so dates in the future are accepted.
func ParseBirthday(raw string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: birthday %q must be a valid date in DD-MM-YYYY form", ErrInvalidFormat, raw)
	}
	return Birthday{date: d}, nil
}

// IsZero reports whether b holds no date.
func (b Birthday) IsZero() bool {
	return b.date.IsZero()
}

// Day returns the day of month.
func (b Birthday) Day() int {
	return b.date.Day()
}

// Month returns the calendar month.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Year returns the birth year.
func (b Birthday) Year() int {
	return b.date.Year()
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
