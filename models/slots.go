package models

import "time"

// AppointmentSlot is a bookable appointment start time owned by the
// upstream scheduling provider. Opaque beyond identity and start time.
type AppointmentSlot struct {
	SlotID   string    `json:"slotId" bson:"slotId"`
	Start    time.Time `json:"start" bson:"start"`
	Date     string    `json:"date" bson:"date"` // provider-local YYYY-MM-DD partition key
	CentreID string    `json:"centreId" bson:"centreId"`
	TestType TestType  `json:"testType" bson:"testType"`
}

// SlotsByDate maps ISO date strings to the slots for that date, in
// provider order. This layer never re-sorts within a date.
type SlotsByDate map[string][]AppointmentSlot

// KpiIdentifiers are telemetry correlation identifiers returned alongside
// the first slot fetch of a booking attempt. Captured at most once per
// attempt.
type KpiIdentifiers struct {
	AttemptCorrelationID string `json:"attemptCorrelationId,omitempty"`
	InventoryCohortID    string `json:"inventoryCohortId,omitempty"`
}

// HasAny reports whether any identifier is present.
func (k KpiIdentifiers) HasAny() bool {
	return k.AttemptCorrelationID != "" || k.InventoryCohortID != ""
}
