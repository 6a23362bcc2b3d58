package appointment

import (
	"strings"
	"time"

	"theorybook/models"
)

// NearTermPolicy selects which near-term dates the date-entry form rejects.
// The candidate booking flow rejects today and tomorrow; the instructor
// flow rejects only today.
type NearTermPolicy int

const (
	RejectTodayOnly NearTermPolicy = iota
	RejectTodayAndTomorrow
)

// Accepted composed layouts. Go's numeric reference fields match one or two
// digits without zero-padding, so these two cover all eight accepted
// day/month shapes; four-digit and two-digit years never cross-match.
var dateFieldLayouts = []string{"2-1-2006", "2-1-06"}

// ParseDateField turns a raw day/month/year triple into a validated
// CalendarDate, or a *ValidationError carrying exactly one rejection code,
// checked in priority order: not valid, in the past, today (or tomorrow,
// per policy), beyond six months. Pure function of its inputs.
func ParseDateField(input models.DateFieldInput, today models.CalendarDate, policy NearTermPolicy) (models.CalendarDate, error) {
	composed := strings.TrimSpace(input.Day) + "-" + strings.TrimSpace(input.Month) + "-" + strings.TrimSpace(input.Year)

	var date models.CalendarDate
	parsed := false
	for _, layout := range dateFieldLayouts {
		t, err := time.Parse(layout, composed)
		if err != nil {
			continue
		}
		date = models.DateOf(t, time.UTC)
		parsed = true
		break
	}
	if !parsed {
		return models.CalendarDate{}, NewValidationError(CodeDateNotValid, "not a real calendar date: "+composed)
	}

	if date.Before(today) {
		return models.CalendarDate{}, NewValidationError(CodeDateInPast, date.ISO()+" is in the past")
	}

	switch policy {
	case RejectTodayOnly:
		if date.Equal(today) {
			return models.CalendarDate{}, NewValidationError(CodeDateIsToday, date.ISO()+" is today")
		}
	case RejectTodayAndTomorrow:
		if date.Equal(today) || date.Equal(today.AddDays(1)) {
			return models.CalendarDate{}, NewValidationError(CodeDateIsTodayOrTomorrow, date.ISO()+" is today or tomorrow")
		}
	}

	if date.After(sixMonthCeiling(today)) {
		return models.CalendarDate{}, NewValidationError(CodeDateBeyond6Months, date.ISO()+" is more than 6 months away")
	}

	return date, nil
}

// sixMonthCeiling is the last bookable date of the global policy window.
func sixMonthCeiling(today models.CalendarDate) models.CalendarDate {
	return today.AddMonths(6).AddDays(-1)
}
