package contacts

import (
	"errors"
	"testing"
	"time"
)

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"10 digits", "0123456789", false},
		{"All zeros", "0000000000", false},
		{"Too short", "123456789", true},
		{"Too long", "12345678901", true},
		{"Letters", "12345abcde", true},
		{"Spaces inside", "12345 6789", true},
		{"Leading plus", "+123456789", true},
		{"Dashes", "123-456-78", true},
		{"Empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePhone(tt.raw)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePhone(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParsePhone(%q) error = %v, want ErrInvalidFormat", tt.raw, err)
				}
				return
			}

			if p.String() != tt.raw {
				t.Errorf("ParsePhone(%q).String() = %q, want round-trip", tt.raw, p.String())
			}
		})
	}
}

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Valid date", "24-03-1990", false},
		{"Leap day", "29-02-2000", false},
		{"First of January", "01-01-1970", false},
		{"Future date accepted", "31-12-2999", false},
		{"Invalid calendar date", "31-02-2000", true},
		{"Day out of range", "32-01-2000", true},
		{"Month out of range", "15-13-2000", true},
		{"Unpadded day", "4-03-1990", true},
		{"Unpadded month", "24-3-1990", true},
		{"ISO ordering", "1990-03-24", true},
		{"Slashes", "24/03/1990", true},
		{"Empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBirthday(tt.raw)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBirthday(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("ParseBirthday(%q) error = %v, want ErrInvalidFormat", tt.raw, err)
				}
				return
			}

			if b.String() != tt.raw {
				t.Errorf("ParseBirthday(%q).String() = %q, want round-trip", tt.raw, b.String())
			}
			if b.IsZero() {
				t.Errorf("ParseBirthday(%q) returned zero Birthday", tt.raw)
			}
		})
	}
}

func TestBirthdayAccessors(t *testing.T) {
	b, err := ParseBirthday("24-03-1990")
	if err != nil {
		t.Fatalf("ParseBirthday() error = %v", err)
	}

	if b.Day() != 24 {
		t.Errorf("Day() = %d, want 24", b.Day())
	}
	if b.Month() != time.March {
		t.Errorf("Month() = %v, want March", b.Month())
	}
	if b.Year() != 1990 {
		t.Errorf("Year() = %d, want 1990", b.Year())
	}
}

func TestBirthdayZeroValue(t *testing.T) {
	var b Birthday
	if !b.IsZero() {
		t.Error("zero Birthday should report IsZero")
	}
}
