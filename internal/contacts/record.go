package contacts

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name, its phone numbers in insertion
// order (duplicates permitted), and at most one optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a record for the given contact name.
func NewRecord(name string) (*Record, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: contact name must not be empty", ErrInvalidArgument)
	}
	return &Record{name: name}, nil
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone parses raw and appends it to the phone list. No
// deduplication is applied.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone whose value equals value. Removing a
// phone that is not stored is not an error.
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces oldValue with newValue. The replacement is
// validated before anything is removed, so a malformed newValue leaves
// the phone list untouched.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := ParsePhone(newValue)
	if err != nil {
		return err
	}
	r.RemovePhone(oldValue)
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone whose value equals value.
func (r *Record) FindPhone(value string) (Phone, error) {
	for _, p := range r.phones {
		if p.value == value {
			return p, nil
		}
	}
	return Phone{}, fmt.Errorf("%w: phone %s", ErrNotFound, value)
}

// SetBirthday assigns or overwrites the record's birthday. Only values
// produced by ParseBirthday are accepted; the zero Birthday is rejected
// so an unparsed date can never be stored.
func (r *Record) SetBirthday(b Birthday) error {
	if b.IsZero() {
		return fmt.Errorf("%w: birthday must be a parsed Birthday value", ErrInvalidArgument)
	}
	r.birthday = b
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
	if !r.birthday.IsZero() {
		s += fmt.Sprintf(", birthday: %s", r.birthday)
	}
	return s
}
