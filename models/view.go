package models

// NavigationState is the calendar paging widget data for one render:
// the desktop week strip, the narrower mobile strip, and the unclamped
// previous/next anchors for both. Derived per request, never persisted.
type NavigationState struct {
	WeekView        []CalendarDate `json:"weekView"`
	WeekViewMobile  []CalendarDate `json:"weekViewMobile"`
	PreviousDesktop CalendarDate   `json:"previousDesktop"`
	NextDesktop     CalendarDate   `json:"nextDesktop"`
	PreviousMobile  CalendarDate   `json:"previousMobile"`
	NextMobile      CalendarDate   `json:"nextMobile"`
}

// PartitionedSlots splits one day's slots at the local midday boundary.
type PartitionedSlots struct {
	Morning   []AppointmentSlot `json:"morning"`
	Afternoon []AppointmentSlot `json:"afternoon"`
}

// AppointmentViewModel is everything the rendering layer needs to draw the
// slot-selection page. Boundary flags are presentation hints; navigation
// anchors are never clamped here.
type AppointmentViewModel struct {
	SelectedDate CalendarDate     `json:"selectedDate"`
	Centre       Centre           `json:"centre"`
	TestType     TestType         `json:"testType"`
	Window       BookingWindow    `json:"bookingWindow"`
	Navigation   NavigationState  `json:"navigation"`
	Slots        PartitionedSlots `json:"slots"`

	IsBeforeToday    bool `json:"isBeforeToday"`
	IsAfterSixMonths bool `json:"isAfterSixMonths"`
	IsBeforeEligible bool `json:"isBeforeEligible"`
	IsAfterEligible  bool `json:"isAfterEligible"`

	// AvailabilityError is set instead of failing the request when the
	// slot repository cannot serve availability.
	AvailabilityError string `json:"availabilityError,omitempty"`

	Editing  bool   `json:"editing"`
	BackLink string `json:"backLink"`
}

// DateFieldInput is the raw day/month/year triple exactly as submitted by
// the date-entry form. Never assumed numeric or zero-padded.
type DateFieldInput struct {
	Day   string `json:"day" form:"day"`
	Month string `json:"month" form:"month"`
	Year  string `json:"year" form:"year"`
}
