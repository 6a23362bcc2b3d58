package models

// TestType identifies the theory test category being booked.
type TestType string

const (
	TestTypeCar              TestType = "car"
	TestTypeMotorcycle       TestType = "motorcycle"
	TestTypeLGV              TestType = "lgv"
	TestTypePCV              TestType = "pcv"
	TestTypeInstructor       TestType = "instructor"
	TestTypeInstructorRetest TestType = "instructor-retest"
)

// ExemptFromEligibilityWindow reports whether eligibility dates supplied by
// the upstream eligibility service must be ignored for this test type.
// Re-scheduling an instructor re-test must not be constrained by the
// original eligibility dates.
func (t TestType) ExemptFromEligibilityWindow() bool {
	return t == TestTypeInstructorRetest
}

// EligibilityWindow is a candidate- and test-type-specific date range
// outside of which the test cannot be booked. A nil bound means unbounded
// on that side.
type EligibilityWindow struct {
	From *CalendarDate `json:"from,omitempty" bson:"from,omitempty"`
	To   *CalendarDate `json:"to,omitempty" bson:"to,omitempty"`
}

// BookingWindow is the computed range of dates a candidate may choose.
// Earliest <= Latest is not guaranteed: an inverted window means no
// bookable dates exist in the eligible period, not an error.
type BookingWindow struct {
	Earliest CalendarDate `json:"earliest"`
	Latest   CalendarDate `json:"latest"`
}

// Inverted reports whether the window contains no dates at all.
func (w BookingWindow) Inverted() bool {
	return w.Earliest.After(w.Latest)
}

// Contains reports whether d falls inside the window, bounds included.
func (w BookingWindow) Contains(d CalendarDate) bool {
	return !d.Before(w.Earliest) && !d.After(w.Latest)
}
