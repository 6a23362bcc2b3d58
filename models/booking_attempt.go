package models

import "time"

// AttemptStage is the booking attempt's position in the selection flow.
type AttemptStage string

const (
	StageNoCentre       AttemptStage = "noCentre"
	StageAwaitingDate   AttemptStage = "awaitingDate"
	StageSlotsDisplayed AttemptStage = "slotsDisplayed"
	StageSlotChosen     AttemptStage = "slotChosen"
)

// KpiCaptureState records whether KPI identifiers have been stored for
// this attempt. Explicit state rather than inference from other fields.
type KpiCaptureState string

const (
	KpiNotYetCaptured KpiCaptureState = "notYetCaptured"
	KpiCaptured       KpiCaptureState = "captured"
)

// ChangeStep is the prior step a candidate chose to alter when amending a
// confirmed booking. Remembered across the re-scheduling sub-flow because
// it decides the back-navigation target.
type ChangeStep string

const (
	ChangeTime     ChangeStep = "time"
	ChangeDate     ChangeStep = "date"
	ChangeLocation ChangeStep = "location"
)

// Centre is a theory test centre, resolved by the external search service.
type Centre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EditRecord holds the in-progress changes when an attempt is amending an
// already-confirmed booking, kept apart from the attempt's primary fields.
type EditRecord struct {
	DateTime   *time.Time `json:"dateTime,omitempty"`
	Centre     *Centre    `json:"centre,omitempty"`
	ChangeStep ChangeStep `json:"changeStep,omitempty"`
}

// BookingAttempt is the in-progress record of one candidate's not-yet-
// confirmed booking, persisted in the session store between wizard steps.
type BookingAttempt struct {
	SessionID string       `json:"sessionId"`
	Stage     AttemptStage `json:"stage"`

	TestType    TestType           `json:"testType"`
	Centre      *Centre            `json:"centre,omitempty"`
	Eligibility *EligibilityWindow `json:"eligibility,omitempty"`

	// DateTime is the chosen slot's start, set when the candidate picks one.
	DateTime *time.Time `json:"dateTime,omitempty"`

	// StoredSearchDate is the last date the candidate browsed, used as the
	// default when a render request carries no date of its own.
	StoredSearchDate *CalendarDate `json:"storedSearchDate,omitempty"`

	// First-exposure telemetry.
	FirstSelectedDate   *CalendarDate   `json:"firstSelectedDate,omitempty"`
	FirstSelectedCentre string          `json:"firstSelectedCentre,omitempty"`
	KpiCapture          KpiCaptureState `json:"kpiCapture"`
	Kpis                *KpiIdentifiers `json:"kpis,omitempty"`

	// Re-scheduling mode: changes go to Edit, not the primary fields.
	Editing bool        `json:"editing"`
	Edit    *EditRecord `json:"edit,omitempty"`
}
