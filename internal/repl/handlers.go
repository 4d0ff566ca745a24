package repl

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/username/contact-book-bot/internal/contacts"
	"github.com/username/contact-book-bot/internal/ui"
)

func (s *Session) addContact(args []string) string {
	if len(args) != 2 {
		return "Invalid command. Please provide a name and a phone number."
	}
	name, phone := args[0], args[1]

	if err := s.book.AddRecord(name, phone, ""); err != nil {
		s.logger.Warn("Failed to add contact",
			zap.String("name", name),
			zap.Error(err))
		return userMessage(err, name)
	}
	return fmt.Sprintf("Contact %s with phone %s added successfully.", name, phone)
}

func (s *Session) changeContact(args []string) string {
	if len(args) != 2 {
		return "Invalid command. Please provide a name and a new phone number."
	}
	name, newPhone := args[0], args[1]

	rec, err := s.book.Find(name)
	if err != nil {
		return userMessage(err, name)
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		if err := rec.AddPhone(newPhone); err != nil {
			return userMessage(err, name)
		}
		return "Contact updated."
	}

	if err := rec.EditPhone(phones[0].String(), newPhone); err != nil {
		return userMessage(err, name)
	}
	return "Contact updated."
}

func (s *Session) showPhone(args []string) string {
	if len(args) != 1 {
		return "Invalid command. Please provide a name."
	}
	name := args[0]

	rec, err := s.book.Find(name)
	if err != nil {
		return userMessage(err, name)
	}

	phones := rec.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", rec.Name(), strings.Join(values, ", "))
}

func (s *Session) showAll(args []string) {
	if len(args) != 0 {
		fmt.Fprintln(s.out, "Invalid command. 'all' command doesn't require additional arguments.")
		return
	}
	if s.book.Len() == 0 {
		fmt.Fprintln(s.out, "No contacts found.")
		return
	}

	rows := []ui.ContactRow{}
	for _, rec := range s.book.Records() {
		phones := rec.Phones()
		values := make([]string, len(phones))
		for i, p := range phones {
			values[i] = p.String()
		}
		row := ui.ContactRow{
			Name:   rec.Name(),
			Phones: strings.Join(values, ", "),
		}
		if bd, ok := rec.Birthday(); ok {
			row.Birthday = bd.String()
		}
		rows = append(rows, row)
	}
	fmt.Fprint(s.out, ui.ContactTable(s.theme, rows))
}

func (s *Session) addBirthday(args []string) string {
	if len(args) != 2 {
		return "Invalid command. Please provide a name and a birthday (format: DD-MM-YYYY)."
	}
	name, raw := args[0], args[1]

	rec, err := s.book.Find(name)
	if err != nil {
		return userMessage(err, name)
	}

	bd, err := contacts.ParseBirthday(raw)
	if err != nil {
		return userMessage(err, name)
	}
	if err := rec.SetBirthday(bd); err != nil {
		return userMessage(err, name)
	}
	return fmt.Sprintf("Birthday added for %s.", name)
}

func (s *Session) showBirthday(args []string) string {
	if len(args) != 1 {
		return "Invalid command. Please provide a name."
	}
	name := args[0]

	rec, err := s.book.Find(name)
	if err != nil {
		return userMessage(err, name)
	}

	if bd, ok := rec.Birthday(); ok {
		return fmt.Sprintf("%s's birthday: %s", name, bd)
	}
	return fmt.Sprintf("%s has no recorded birthday.", name)
}

func (s *Session) deleteContact(args []string) string {
	if len(args) != 1 {
		return "Invalid command. Please provide a name."
	}
	name := args[0]

	if _, err := s.book.Find(name); err != nil {
		return userMessage(err, name)
	}
	s.book.Delete(name)
	return fmt.Sprintf("Contact %s deleted.", name)
}

func (s *Session) showBirthdays(args []string) {
	if len(args) != 0 {
		fmt.Fprintln(s.out, "Invalid command. 'birthdays' command doesn't require additional arguments.")
		return
	}

	buckets := s.book.UpcomingBirthdays(s.clock())
	lines := ui.BirthdayLines(buckets)
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "No upcoming birthdays this week.")
		return
	}
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

// userMessage translates a core error into a single user-facing line.
func userMessage(err error, name string) string {
	if errors.Is(err, contacts.ErrNotFound) {
		return fmt.Sprintf("Contact not found: %s", name)
	}
	return err.Error()
}
