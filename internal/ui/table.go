package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
)

// ContactRow is one rendered line of the contact table.
type ContactRow struct {
	Name     string
	Phones   string
	Birthday string
}

const (
	nameColWidth     = 20
	phonesColWidth   = 40
	birthdayColWidth = 20
)

// ContactTable renders the contact rows as a fixed-width three-column
// table with a styled header.
func ContactTable(theme Theme, rows []ContactRow) string {
	var b strings.Builder

	b.WriteString(theme.Header.Render(pad("Name", nameColWidth)))
	b.WriteString(theme.Header.Render(pad("Phones", phonesColWidth)))
	b.WriteString(theme.Header.Render(pad("Birthday", birthdayColWidth)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", nameColWidth+phonesColWidth+birthdayColWidth))
	b.WriteString("\n")

	for _, row := range rows {
		birthday := row.Birthday
		if birthday == "" {
			birthday = "None"
		}
		b.WriteString(theme.Name.Render(pad(row.Name, nameColWidth)))
		b.WriteString(theme.Phones.Render(pad(row.Phones, phonesColWidth)))
		b.WriteString(theme.Birthday.Render(pad(birthday, birthdayColWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

// weekOrder is the display order for birthday buckets.
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// BirthdayLines formats the scheduler's weekday buckets as one line per
// weekday in Monday-to-Sunday order. Empty buckets are omitted.
func BirthdayLines(buckets map[time.Weekday][]string) []string {
	lines := []string{}
	for _, weekday := range weekOrder {
		names := buckets[weekday]
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", weekday, strings.Join(names, ", ")))
	}
	return lines
}

// pad fits s into a column of the given display width, keeping one
// trailing space as the column separator. Truncation and padding count
// terminal cells, not bytes, so wide runes stay aligned.
func pad(s string, width int) string {
	return padding.String(truncate.String(s, uint(width-1)), uint(width))
}
