package schedule

import "time"

// AddBusinessDays moves t forward by n working days, skipping Saturdays and
// Sundays. A non-positive n returns t unchanged.
func AddBusinessDays(t time.Time, n int) time.Time {
	d := t
	for added := 0; added < n; {
		d = d.AddDate(0, 0, 1)
		if IsBusinessDay(d) {
			added++
		}
	}
	return d
}

func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// TargetDate is the default completion date for an order placed on orderDate.
func TargetDate(orderDate time.Time, leadDays int) time.Time {
	return AddBusinessDays(StartOfDay(orderDate), leadDays)
}

// StartOfDay is midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BeforeDay reports whether a falls on an earlier calendar day than b, each
// read in its own location.
func BeforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC).Before(time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC))
}
