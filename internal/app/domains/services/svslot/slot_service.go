package svslot

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etslot"
)

// 基础时段表（半小时粒度）
var (
	morningTimes   = []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	afternoonTimes = []string{"12:00", "12:30", "13:00", "13:30", "14:00", "14:30"}
	eveningTimes   = []string{"15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00"}
)

// SlotService 时段服务
// 时段按 locality+date 动态生成，不落库；可用性由槽位ID确定性派生，
// 同一请求参数永远得到同一结果
type SlotService struct{}

// NewSlotService 创建时段服务实例
func NewSlotService() *SlotService {
	return &SlotService{}
}

// ListSlots 生成指定区域、指定日期的时段列表
// date 为空时取当天；sodala 区域剔除 14:00 档
func (s *SlotService) ListSlots(locality, date string) []*etslot.Slot {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	times := make([]string, 0, len(morningTimes)+len(afternoonTimes)+len(eveningTimes))
	times = append(times, morningTimes...)
	times = append(times, afternoonTimes...)
	times = append(times, eveningTimes...)

	if strings.Contains(strings.ToLower(locality), "sodala") {
		filtered := times[:0]
		for _, t := range times {
			if t != "14:00" {
				filtered = append(filtered, t)
			}
		}
		times = filtered
	}

	slots := make([]*etslot.Slot, 0, len(times))
	for _, start := range times {
		id := fmt.Sprintf("slot-%s-%s-%s", locality, start, date)
		seed := hashSlotID(id)
		slots = append(slots, &etslot.Slot{
			ID:              id,
			StartTime:       start,
			EndTime:         endTime(start),
			Date:            date,
			Locality:        locality,
			IsAvailable:     seed%10 >= 2,
			MaxCapacity:     5,
			CurrentBookings: int(seed % 3),
			Period:          classifyPeriod(start),
		})
	}
	return slots
}

// endTime 半小时档的结束时间
func endTime(start string) string {
	parts := strings.SplitN(start, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	if parts[1] == "30" {
		return fmt.Sprintf("%02d:00", hour+1)
	}
	return fmt.Sprintf("%02d:30", hour)
}

// classifyPeriod 按开始时间归类时段
func classifyPeriod(start string) string {
	hour, _ := strconv.Atoi(strings.SplitN(start, ":", 2)[0])
	switch {
	case hour < 12:
		return etslot.PeriodMorning
	case hour < 15:
		return etslot.PeriodAfternoon
	default:
		return etslot.PeriodEvening
	}
}

func hashSlotID(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}
