package svslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etslot"
)

func TestListSlotsGeneratesFullDay(t *testing.T) {
	svc := NewSlotService()
	slots := svc.ListSlots("malviya-nagar", "2026-09-01")

	// 6 上午 + 6 下午 + 7 晚间
	require.Len(t, slots, 19)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "18:00", slots[len(slots)-1].StartTime)
	assert.Equal(t, "18:30", slots[len(slots)-1].EndTime)

	for _, s := range slots {
		assert.Equal(t, "2026-09-01", s.Date)
		assert.Equal(t, "malviya-nagar", s.Locality)
		assert.Equal(t, 5, s.MaxCapacity)
		assert.Less(t, s.CurrentBookings, 3)
	}
}

func TestListSlotsSodalaDropsTwoPM(t *testing.T) {
	svc := NewSlotService()
	slots := svc.ListSlots("Sodala", "2026-09-01")

	require.Len(t, slots, 18)
	for _, s := range slots {
		assert.NotEqual(t, "14:00", s.StartTime)
	}
}

func TestListSlotsPeriodClassification(t *testing.T) {
	svc := NewSlotService()
	slots := svc.ListSlots("vaishali", "2026-09-01")

	periods := make(map[string]string)
	for _, s := range slots {
		periods[s.StartTime] = s.Period
	}
	assert.Equal(t, etslot.PeriodMorning, periods["11:30"])
	assert.Equal(t, etslot.PeriodAfternoon, periods["12:00"])
	assert.Equal(t, etslot.PeriodAfternoon, periods["14:30"])
	assert.Equal(t, etslot.PeriodEvening, periods["15:00"])
}

// 同一请求参数永远得到同一可用性结果
func TestListSlotsDeterministic(t *testing.T) {
	svc := NewSlotService()
	first := svc.ListSlots("sodala", "2026-09-01")
	second := svc.ListSlots("sodala", "2026-09-01")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].IsAvailable, second[i].IsAvailable)
		assert.Equal(t, first[i].CurrentBookings, second[i].CurrentBookings)
	}
}
