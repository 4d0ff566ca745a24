package contacts

import (
	"time"

	"github.com/username/contact-book-bot/pkg/dateutil"
)

// lookaheadDays is the length of the upcoming-birthday window.
const lookaheadDays = 7

// UpcomingBirthdays reports which contacts have birthdays landing in
// the 7-day window starting at today, grouped by the weekday they
// should be celebrated on. Weekend birthdays are moved to the
// following Monday; a birthday that passed up to two days ago is still
// reported on Monday when today is Monday. Names inside each bucket
// keep the book's insertion order.
//
// today is injected by the caller so results are deterministic; only
// its calendar date matters.
func (b *AddressBook) UpcomingBirthdays(today time.Time) map[time.Weekday][]string {
	today = dateutil.StartOfDay(today)
	buckets := make(map[time.Weekday][]string)

	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		day, celebrate := celebrationDay(bd, today)
		if !celebrate {
			continue
		}
		buckets[day] = append(buckets[day], rec.Name())
	}

	return buckets
}

// celebrationDay computes the weekday a birthday should be celebrated
// on, or false when it falls outside the lookahead window.
func celebrationDay(b Birthday, today time.Time) (time.Weekday, bool) {
	// Note: a birthday on Feb 29 normalizes to Mar 1 in non-leap years.
	occurrence := time.Date(today.Year(), b.Month(), b.Day(), 0, 0, 0, 0, today.Location())

	todayWeekday := today.Weekday()
	midweek := todayWeekday != time.Monday && dateutil.IsWeekday(today)

	// A birthday that passed one or two days ago is re-anchored to next
	// year, unless today is Monday or a weekend day.
	if occurrence.Before(today) {
		if dateutil.DaysBetween(today, occurrence) > -3 && midweek {
			occurrence = occurrence.AddDate(1, 0, 0)
		}
	}

	delta := dateutil.DaysBetween(today, occurrence)
	if delta < -2 || delta >= lookaheadDays {
		return 0, false
	}

	weekday := today.AddDate(0, 0, delta).Weekday()

	// Weekend-shift rules; first matching case wins.
	switch {
	case midweek && delta >= 0:
		if dateutil.IsWeekend(today.AddDate(0, 0, delta)) {
			weekday = time.Monday
		}
	case todayWeekday == time.Monday && delta > 5:
		return 0, false
	case todayWeekday == time.Monday && delta <= 0:
		weekday = time.Monday
	case todayWeekday == time.Sunday && delta == 0:
		weekday = time.Monday
	}

	return weekday, true
}
