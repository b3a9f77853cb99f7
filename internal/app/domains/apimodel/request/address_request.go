package request

// CreateAddressRequest 创建地址请求
type CreateAddressRequest struct {
	UserID        string   `json:"user_id" binding:"required,uuid"`
	AddressLine1  string   `json:"address_line1" binding:"required" example:"12 MG Road"`
	AddressLine2  string   `json:"address_line2" example:"Near Metro Station"`
	City          string   `json:"city" binding:"required" example:"Jaipur"`
	State         string   `json:"state" binding:"required" example:"Rajasthan"`
	PostalCode    string   `json:"postal_code" binding:"required" example:"302001"`
	Country       string   `json:"country" example:"India"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	GooglePlaceID string   `json:"google_place_id"`
	IsDefault     bool     `json:"is_default"`
}

// UpdateAddressRequest 更新地址请求（所有字段可选，部分更新）
type UpdateAddressRequest struct {
	AddressLine1  *string  `json:"address_line1"`
	AddressLine2  *string  `json:"address_line2"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	PostalCode    *string  `json:"postal_code"`
	Country       *string  `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	GooglePlaceID *string  `json:"google_place_id"`
	IsDefault     *bool    `json:"is_default"`
}

// ToUpdates 将非空字段收敛为列更新映射
func (r *UpdateAddressRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.AddressLine1 != nil {
		updates["address_line1"] = *r.AddressLine1
	}
	if r.AddressLine2 != nil {
		updates["address_line2"] = *r.AddressLine2
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.State != nil {
		updates["state"] = *r.State
	}
	if r.PostalCode != nil {
		updates["postal_code"] = *r.PostalCode
	}
	if r.Country != nil {
		updates["country"] = *r.Country
	}
	if r.Latitude != nil {
		updates["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		updates["longitude"] = *r.Longitude
	}
	if r.GooglePlaceID != nil {
		updates["google_place_id"] = *r.GooglePlaceID
	}
	if r.IsDefault != nil {
		updates["is_default"] = *r.IsDefault
	}
	return updates
}
