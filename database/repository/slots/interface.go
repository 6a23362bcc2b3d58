// File: database/repository/slots/interface.go
package slotsRepo

import (
	"context"

	"theorybook/database"
	"theorybook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotQuery asks for the bookable slots around one date at one centre.
// FirstSelectedDate is set only while KPI capture has not yet happened for
// the attempt; its presence makes the repository return KPI identifiers.
type SlotQuery struct {
	Date              models.CalendarDate
	CentreID          string
	TestType          models.TestType
	Eligibility       *models.EligibilityWindow
	FirstSelectedDate *models.CalendarDate
}

// SlotResult carries the slots for the queried date and the surrounding
// dates fetched in the same call, keyed by ISO date, plus KPI identifiers
// when the query signalled a first fetch.
type SlotResult struct {
	SlotsByDate models.SlotsByDate
	Kpis        *models.KpiIdentifiers
}

// SlotRepository is the slot inventory owned by the upstream scheduling
// provider.
type SlotRepository interface {
	GetSlots(ctx context.Context, query SlotQuery) (*SlotResult, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository over the local inventory
// mirror synced from the scheduling provider.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.Collection("slots"),
	}
}
