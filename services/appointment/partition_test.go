package appointment

import (
	"testing"
	"time"

	"theorybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotAt(t *testing.T, date models.CalendarDate, hour, min int, loc *time.Location) models.AppointmentSlot {
	t.Helper()
	start := date.At(hour, min, loc)
	return models.AppointmentSlot{
		SlotID:   start.Format(time.RFC3339),
		Start:    start,
		Date:     date.ISO(),
		CentreID: "centre-1",
		TestType: models.TestTypeCar,
	}
}

func TestPartitionSlotsAtMidday(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	date := mustDate(t, "2020-07-15")

	slots := []models.AppointmentSlot{
		slotAt(t, date, 8, 30, london),
		slotAt(t, date, 11, 59, london),
		slotAt(t, date, 12, 0, london),
		slotAt(t, date, 15, 0, london),
	}

	out := PartitionSlots(slots, date, london)
	require.Len(t, out.Morning, 2)
	require.Len(t, out.Afternoon, 2)
	assert.Equal(t, slots[0], out.Morning[0])
	assert.Equal(t, slots[1], out.Morning[1])
	assert.Equal(t, slots[2], out.Afternoon[0], "12:00 exactly is afternoon")
	assert.Equal(t, slots[3], out.Afternoon[1])
}

func TestPartitionSlotsConvertsToReferenceZone(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	date := mustDate(t, "2020-07-15")

	// 11:30 UTC is 12:30 BST: afternoon in the reference zone even though
	// the provider timestamp reads as morning in UTC.
	utcSlot := models.AppointmentSlot{
		SlotID: "2020-07-15T11:30:00Z",
		Start:  time.Date(2020, time.July, 15, 11, 30, 0, 0, time.UTC),
		Date:   date.ISO(),
	}

	out := PartitionSlots([]models.AppointmentSlot{utcSlot}, date, london)
	assert.Empty(t, out.Morning)
	require.Len(t, out.Afternoon, 1)
}

func TestPartitionSlotsIsTotalAndOrderPreserving(t *testing.T) {
	london, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	date := mustDate(t, "2020-02-10")

	// Provider order is deliberately not time-sorted.
	slots := []models.AppointmentSlot{
		slotAt(t, date, 14, 0, london),
		slotAt(t, date, 9, 0, london),
		slotAt(t, date, 16, 30, london),
		slotAt(t, date, 7, 15, london),
	}

	out := PartitionSlots(slots, date, london)
	assert.Equal(t, len(slots), len(out.Morning)+len(out.Afternoon))
	assert.Equal(t, []models.AppointmentSlot{slots[1], slots[3]}, out.Morning)
	assert.Equal(t, []models.AppointmentSlot{slots[0], slots[2]}, out.Afternoon)

	empty := PartitionSlots(nil, date, london)
	assert.Empty(t, empty.Morning)
	assert.Empty(t, empty.Afternoon)
}
