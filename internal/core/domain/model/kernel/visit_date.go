package kernel

import (
	"fmt"
	"time"

	"verification/internal/pkg/errs"
)

// VisitDate is the value object for a scheduled visit day.
// The date is stored truncated to midnight in the local calendar; at
// construction time it must be today or later. The boundary is only
// checked when the date is set, never retroactively, so an order whose
// visit date has passed remains valid.
type VisitDate struct {
	value time.Time
}

// NewVisitDate validates that the given date is today or later (date-only
// comparison against the local calendar day) and wraps it.
func NewVisitDate(date time.Time) (VisitDate, error) {
	return newVisitDateAt(date, time.Now())
}

// newVisitDateAt is the clock-injected constructor used by tests.
func newVisitDateAt(date, now time.Time) (VisitDate, error) {
	if date.IsZero() {
		return VisitDate{}, errs.NewValueIsRequiredError("visit date")
	}

	day := truncateToDay(date)
	today := truncateToDay(now)
	if day.Before(today) {
		return VisitDate{}, errs.NewValueIsInvalidErrorWithCause("visit date",
			fmt.Errorf("%s is before today", day.Format(time.DateOnly)))
	}

	return VisitDate{value: day}, nil
}

// RestoreVisitDate rebuilds a VisitDate from persistence without re-checking
// the today-or-later boundary.
func RestoreVisitDate(date time.Time) (VisitDate, error) {
	if date.IsZero() {
		return VisitDate{}, errs.NewValueIsRequiredError("visit date")
	}
	return VisitDate{value: truncateToDay(date)}, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Value returns the visit day at local midnight.
func (d VisitDate) Value() time.Time {
	return d.value
}

// Weekday returns the day of week of the visit.
func (d VisitDate) Weekday() time.Weekday {
	return d.value.Weekday()
}

// String formats the visit date as YYYY-MM-DD.
func (d VisitDate) String() string {
	return d.value.Format(time.DateOnly)
}

// IsEqual compares two visit dates by day.
func (d VisitDate) IsEqual(other VisitDate) bool {
	return d.value.Equal(other.value)
}

// Validate returns an error for a zero-value VisitDate.
func (d VisitDate) Validate() error {
	if d.value.IsZero() {
		return errs.NewValueIsRequiredError("VisitDate must be created via NewVisitDate")
	}
	return nil
}
