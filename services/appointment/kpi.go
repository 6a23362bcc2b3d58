package appointment

import "theorybook/models"

// The KPI capture gate: across the lifetime of one booking attempt, KPI
// identifiers are requested and stored at most once, no matter how many
// times the slot page is rendered. These two functions are the only
// mutators of the attempt's KPI fields.

// ShouldRequestKpis reports whether the next slot fetch should carry the
// first-selected-date signal that makes the repository return KPI
// identifiers.
func ShouldRequestKpis(attempt *models.BookingAttempt) bool {
	return attempt.KpiCapture != models.KpiCaptured
}

// CaptureKpisIfPresent stores freshly returned identifiers on the attempt
// and closes the gate. Idempotent: once captured, later calls are no-ops,
// and nil or empty identifiers leave the gate open.
func CaptureKpisIfPresent(attempt *models.BookingAttempt, ids *models.KpiIdentifiers) {
	if attempt.KpiCapture == models.KpiCaptured {
		return
	}
	if ids == nil || !ids.HasAny() {
		return
	}
	stored := *ids
	attempt.Kpis = &stored
	attempt.KpiCapture = models.KpiCaptured
}
