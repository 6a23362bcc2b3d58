package appointment

import (
	"time"

	"theorybook/models"
)

// PartitionSlots splits one day's slots at midday of the selected date in
// the reference time zone. A slot is morning iff its local start is
// strictly before 12:00:00; input order is preserved within each half.
// Total: every slot lands in exactly one partition.
func PartitionSlots(slots []models.AppointmentSlot, selected models.CalendarDate, loc *time.Location) models.PartitionedSlots {
	midday := selected.At(12, 0, loc)

	var out models.PartitionedSlots
	for _, slot := range slots {
		if slot.Start.In(loc).Before(midday) {
			out.Morning = append(out.Morning, slot)
		} else {
			out.Afternoon = append(out.Afternoon, slot)
		}
	}
	return out
}
