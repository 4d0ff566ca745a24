package contacts

import "fmt"

// AddressBook keys records by contact name and preserves insertion
// order for iteration. At most one record exists per name; adding a
// record under an existing name overwrites it silently and keeps the
// original position. Not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord builds a record with a single phone and an optional
// birthday (empty string = none) and stores it under name. On any
// validation failure nothing is stored.
func (b *AddressBook) AddRecord(name, phone, birthday string) error {
	rec, err := NewRecord(name)
	if err != nil {
		return err
	}
	if err := rec.AddPhone(phone); err != nil {
		return err
	}
	if birthday != "" {
		bd, err := ParseBirthday(birthday)
		if err != nil {
			return err
		}
		rec.birthday = bd
	}
	b.put(name, rec)
	return nil
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, error) {
	rec, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, name)
	}
	return rec, nil
}

// UpdateRecord replaces the record stored under name. Unlike AddRecord
// it fails when the name is absent.
func (b *AddressBook) UpdateRecord(name string, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record must not be nil", ErrInvalidArgument)
	}
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: contact %s", ErrNotFound, name)
	}
	b.records[name] = rec
	return nil
}

// Delete removes the record stored under name. Deleting an absent name
// is a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

func (b *AddressBook) put(name string, rec *Record) {
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}
