package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/contact-book-bot/internal/contacts"
	"github.com/username/contact-book-bot/internal/ui"
	"github.com/username/contact-book-bot/pkg/dateutil"
)

// Config carries the optional knobs of a Session.
type Config struct {
	Prompt string
	Theme  ui.Theme
	Logger *zap.Logger
	Clock  func() time.Time // defaults to dateutil.Today
}

// Session is one interactive assistant run over a single address book.
// It reads whitespace-tokenized commands line by line, dispatches them
// to the book, and writes user-facing messages to out. Core errors are
// translated to single-line messages and never end the session.
type Session struct {
	book   *contacts.AddressBook
	in     io.Reader
	out    io.Writer
	prompt string
	theme  ui.Theme
	logger *zap.Logger
	clock  func() time.Time
}

// NewSession creates a session over the given book and streams.
func NewSession(book *contacts.AddressBook, in io.Reader, out io.Writer, cfg Config) *Session {
	if cfg.Prompt == "" {
		cfg.Prompt = "Enter a command: "
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = dateutil.Today
	}
	return &Session{
		book:   book,
		in:     in,
		out:    out,
		prompt: cfg.Prompt,
		theme:  cfg.Theme,
		logger: cfg.Logger,
		clock:  cfg.Clock,
	}
}

// Run executes the command loop until exit/close or end of input.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, s.theme.Banner.Render("Welcome to the assistant bot!"))

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			break
		}

		command, args := parseInput(scanner.Text())
		if command == "" {
			continue
		}

		s.logger.Debug("Command received",
			zap.String("command", command),
			zap.Int("args", len(args)))

		if command == "exit" || command == "close" {
			fmt.Fprintln(s.out, s.theme.Goodbye.Render("Goodbye!"))
			return nil
		}

		s.dispatch(command, args)
	}

	return scanner.Err()
}

func (s *Session) dispatch(command string, args []string) {
	switch command {
	case "hello":
		fmt.Fprintln(s.out, s.theme.Reply.Render("How can I help you?"))
	case "add":
		fmt.Fprintln(s.out, s.addContact(args))
	case "change":
		fmt.Fprintln(s.out, s.changeContact(args))
	case "phone":
		fmt.Fprintln(s.out, s.showPhone(args))
	case "all":
		s.showAll(args)
	case "add-birthday":
		fmt.Fprintln(s.out, s.addBirthday(args))
	case "show-birthday":
		fmt.Fprintln(s.out, s.showBirthday(args))
	case "delete":
		fmt.Fprintln(s.out, s.deleteContact(args))
	case "birthdays":
		s.showBirthdays(args)
	default:
		fmt.Fprintln(s.out, s.theme.Notice.Render("Invalid command."))
	}
}

// parseInput splits a line into a lowercased command verb and its
// arguments. A blank line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
