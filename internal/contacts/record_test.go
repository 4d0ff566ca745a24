package contacts

import (
	"errors"
	"testing"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	rec, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) error = %v", name, err)
	}
	for _, p := range phones {
		if err := rec.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	return rec
}

func phoneValues(rec *Record) []string {
	phones := rec.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out
}

func TestNewRecordEmptyName(t *testing.T) {
	_, err := NewRecord("")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewRecord(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestAddPhone(t *testing.T) {
	rec := mustRecord(t, "John")

	if err := rec.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() error = %v", err)
	}
	if err := rec.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone() duplicate error = %v", err)
	}

	got := phoneValues(rec)
	want := []string{"1234567890", "1234567890"}
	if len(got) != len(want) {
		t.Fatalf("phones = %v, want %v", got, want)
	}

	if err := rec.AddPhone("12345"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("AddPhone(invalid) error = %v, want ErrInvalidFormat", err)
	}
	if len(rec.Phones()) != 2 {
		t.Errorf("failed AddPhone must not mutate the phone list")
	}
}

func TestRemovePhone(t *testing.T) {
	rec := mustRecord(t, "John", "1111111111", "2222222222", "1111111111")

	rec.RemovePhone("1111111111")

	got := phoneValues(rec)
	if len(got) != 1 || got[0] != "2222222222" {
		t.Errorf("phones after RemovePhone = %v, want [2222222222]", got)
	}

	// Removing an absent phone is a no-op, not an error.
	rec.RemovePhone("9999999999")
	if len(rec.Phones()) != 1 {
		t.Errorf("RemovePhone(absent) must not change the list")
	}
}

func TestEditPhone(t *testing.T) {
	rec := mustRecord(t, "John", "1111111111", "2222222222")

	if err := rec.EditPhone("1111111111", "3333333333"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	if _, err := rec.FindPhone("1111111111"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old phone still present after EditPhone")
	}
	if _, err := rec.FindPhone("3333333333"); err != nil {
		t.Errorf("new phone missing after EditPhone: %v", err)
	}
}

func TestEditPhoneInvalidReplacementKeepsOld(t *testing.T) {
	rec := mustRecord(t, "John", "1111111111")

	err := rec.EditPhone("1111111111", "bad")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("EditPhone(invalid) error = %v, want ErrInvalidFormat", err)
	}

	// The old phone must survive a failed edit.
	if _, err := rec.FindPhone("1111111111"); err != nil {
		t.Errorf("old phone lost after failed EditPhone: %v", err)
	}
}

func TestFindPhone(t *testing.T) {
	rec := mustRecord(t, "John", "1111111111", "2222222222")

	p, err := rec.FindPhone("2222222222")
	if err != nil {
		t.Fatalf("FindPhone() error = %v", err)
	}
	if p.String() != "2222222222" {
		t.Errorf("FindPhone() = %s, want 2222222222", p)
	}

	if _, err := rec.FindPhone("0000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindPhone(absent) error = %v, want ErrNotFound", err)
	}
}

func TestSetBirthday(t *testing.T) {
	rec := mustRecord(t, "John")

	bd, err := ParseBirthday("24-03-1990")
	if err != nil {
		t.Fatalf("ParseBirthday() error = %v", err)
	}
	if err := rec.SetBirthday(bd); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}

	got, ok := rec.Birthday()
	if !ok || got.String() != "24-03-1990" {
		t.Errorf("Birthday() = %v, %v; want 24-03-1990, true", got, ok)
	}

	// Overwrite, no history kept.
	bd2, _ := ParseBirthday("01-01-2000")
	if err := rec.SetBirthday(bd2); err != nil {
		t.Fatalf("SetBirthday() overwrite error = %v", err)
	}
	got, _ = rec.Birthday()
	if got.String() != "01-01-2000" {
		t.Errorf("Birthday() after overwrite = %v, want 01-01-2000", got)
	}
}

func TestSetBirthdayRejectsZeroValue(t *testing.T) {
	rec := mustRecord(t, "John")

	if err := rec.SetBirthday(Birthday{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetBirthday(zero) error = %v, want ErrInvalidArgument", err)
	}
	if _, ok := rec.Birthday(); ok {
		t.Error("rejected birthday must not be stored")
	}
}

func TestRecordString(t *testing.T) {
	rec := mustRecord(t, "John", "1234567890", "0987654321")

	want := "Contact name: John, phones: 1234567890; 0987654321"
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	bd, _ := ParseBirthday("24-03-1990")
	if err := rec.SetBirthday(bd); err != nil {
		t.Fatalf("SetBirthday() error = %v", err)
	}

	want += ", birthday: 24-03-1990"
	if got := rec.String(); got != want {
		t.Errorf("String() with birthday = %q, want %q", got, want)
	}
}
