// File: database/repository/slots/queries.go
package slotsRepo

import (
	"context"
	"fmt"
	"time"

	"theorybook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fetchSpanDays is how many days either side of the queried date are
// returned in the same call, enough to fill the mobile strip without a
// second round trip.
const fetchSpanDays = 3

func (repo *mongoSlotRepo) GetSlots(ctx context.Context, query SlotQuery) (*SlotResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	from := query.Date.AddDays(-fetchSpanDays)
	to := query.Date.AddDays(fetchSpanDays)
	if query.Eligibility != nil {
		if query.Eligibility.From != nil && query.Eligibility.From.After(from) {
			from = *query.Eligibility.From
		}
		if query.Eligibility.To != nil && query.Eligibility.To.Before(to) {
			to = *query.Eligibility.To
		}
	}

	filter := bson.M{
		"centreId": query.CentreID,
		"testType": query.TestType,
		"date":     bson.M{"$gte": from.ISO(), "$lte": to.ISO()},
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start", Value: 1},
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.AppointmentSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}

	byDate := make(models.SlotsByDate)
	for _, slot := range slots {
		byDate[slot.Date] = append(byDate[slot.Date], slot)
	}

	result := &SlotResult{SlotsByDate: byDate}
	if query.FirstSelectedDate != nil {
		// First fetch for this attempt: mint the telemetry correlation
		// identifiers the provider attaches to first exposure.
		result.Kpis = &models.KpiIdentifiers{
			AttemptCorrelationID: uuid.New().String(),
			InventoryCohortID:    fmt.Sprintf("%s-%s", query.CentreID, query.FirstSelectedDate.ISO()),
		}
	}
	return result, nil
}
