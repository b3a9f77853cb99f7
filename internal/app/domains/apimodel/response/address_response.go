package response

// AddressResponse 地址信息响应
type AddressResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	AddressLine1  string   `json:"address_line1"`
	AddressLine2  string   `json:"address_line2,omitempty"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	PostalCode    string   `json:"postal_code"`
	Country       string   `json:"country"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GooglePlaceID string   `json:"google_place_id,omitempty"`
	IsDefault     bool     `json:"is_default"`
	CreatedAt     string   `json:"created_at"`
}
