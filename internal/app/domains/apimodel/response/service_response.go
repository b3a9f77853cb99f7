package response

// ServiceResponse 服务目录条目响应
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	CategoryID      string  `json:"category_id,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
}

// SlotResponse 时段响应
type SlotResponse struct {
	ID              string `json:"id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Date            string `json:"date"`
	Locality        string `json:"locality"`
	IsAvailable     bool   `json:"is_available"`
	MaxCapacity     int    `json:"max_capacity"`
	CurrentBookings int    `json:"current_bookings"`
	Period          string `json:"period"`
}

// SlotListResponse 时段列表响应
type SlotListResponse struct {
	Slots    []*SlotResponse `json:"slots"`
	Locality string          `json:"locality"`
	Date     string          `json:"date"`
	Count    int             `json:"count"`
}
