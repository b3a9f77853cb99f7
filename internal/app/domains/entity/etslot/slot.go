package etslot

// Slot 时段（值对象，按 locality+date 动态生成，不落库）
type Slot struct {
	ID              string // 槽位ID: slot-<locality>-<start>-<date>
	StartTime       string // 开始时间 HH:MM
	EndTime         string // 结束时间 HH:MM
	Date            string // 日期 YYYY-MM-DD
	Locality        string // 区域
	IsAvailable     bool   // 是否可约
	MaxCapacity     int    // 最大容量
	CurrentBookings int    // 当前预约数
	Period          string // 时段分类 morning/afternoon/evening
}

// 时段分类常量
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)
