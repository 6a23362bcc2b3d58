package appointment

import "theorybook/models"

// ComputeBookingWindow intersects the global policy window (tomorrow
// through six months ahead, exclusive of the day six months out) with the
// candidate's eligibility window for this test type.
//
// The instructor re-test type ignores any supplied eligibility window:
// re-scheduling that test must not be constrained by the original
// eligibility dates.
//
// The result may be inverted (earliest after latest); callers must treat
// that as "no bookable dates", not as an error.
func ComputeBookingWindow(today models.CalendarDate, eligibility *models.EligibilityWindow, testType models.TestType) models.BookingWindow {
	window := models.BookingWindow{
		Earliest: today.AddDays(1),
		Latest:   sixMonthCeiling(today),
	}

	if testType.ExemptFromEligibilityWindow() {
		eligibility = nil
	}
	if eligibility == nil {
		return window
	}

	if eligibility.From != nil && eligibility.From.After(window.Earliest) {
		window.Earliest = *eligibility.From
	}
	if eligibility.To != nil && eligibility.To.Before(window.Latest) {
		window.Latest = *eligibility.To
	}
	return window
}
