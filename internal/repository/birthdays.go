package repository

import (
	"time"

	"gitlab.com/olena.kushnir/contacts-api/internal/model"
)

// UpcomingBirthdays returns the contacts of ownerID whose birthday falls
// inside the (currentDate, toDate] window when all dates are reduced to
// month and day.
//
// Pagination happens BEFORE the date filter: the offset/limit window is
// applied to the owner's full contact set, and only the fetched page is
// filtered. The result can therefore be smaller than limit even when more
// qualifying contacts exist beyond the page. Callers depend on this order
// of operations.
func (r *ContactRepository) UpcomingBirthdays(currentDate, toDate time.Time, offset, limit int, ownerID int64, wrapAware bool) ([]model.Contact, error) {
	page, err := r.ListOwn(limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	inWindow := birthdayInWindow
	if wrapAware {
		inWindow = birthdayInWindowWrapAware
	}
	upcoming := []model.Contact{}
	for _, contact := range page {
		if inWindow(contact.BirthDate, currentDate, toDate) {
			upcoming = append(upcoming, contact)
		}
	}
	return upcoming, nil
}

// monthDay is a date reduced to its calendar position within a year.
type monthDay struct {
	month time.Month
	day   int
}

func toMonthDay(t time.Time) monthDay {
	return monthDay{month: t.Month(), day: t.Day()}
}

// less orders month/day pairs lexicographically, month first.
func (m monthDay) less(other monthDay) bool {
	if m.month != other.month {
		return m.month < other.month
	}
	return m.day < other.day
}

// birthdayInWindow reports whether birthday falls after from and at or
// before to, with all three dates reduced to month and day. The year is
// ignored entirely, which also means a window crossing the turn of the
// year (from in December, to in January) matches nothing: the lexicographic
// comparison cannot wrap. That limitation is kept as observed behavior;
// birthdayInWindowWrapAware is the corrected alternative.
func birthdayInWindow(birthday, from, to time.Time) bool {
	b := toMonthDay(birthday)
	f := toMonthDay(from)
	t := toMonthDay(to)
	return f.less(b) && !t.less(b)
}

// birthdayInWindowWrapAware behaves like birthdayInWindow for ordinary
// windows and additionally handles windows that cross the turn of the
// year: when from is calendar-later than to, a birthday qualifies if it
// lies after from or at/before to.
func birthdayInWindowWrapAware(birthday, from, to time.Time) bool {
	b := toMonthDay(birthday)
	f := toMonthDay(from)
	t := toMonthDay(to)
	if t.less(f) {
		return f.less(b) || !t.less(b)
	}
	return f.less(b) && !t.less(b)
}
