package models

// Service is a price-list entry: a billable procedure with three price tiers.
type Service struct {
	BaseModel
	ServiceName       string  `gorm:"size:255" json:"serviceName"`
	ServiceCategory   string  `gorm:"size:100" json:"serviceCategory"`
	PriceInsurance    float64 `json:"priceInsurance"`
	PriceSupplemental float64 `json:"priceSupplemental"`
	PricePaid         float64 `json:"pricePaid"`
	DurationMinutes   int     `json:"durationMinutes"`
	IsActive          bool    `gorm:"not null" json:"isActive"`
}

// TableName keeps the price list apart from the service layer vocabulary.
func (Service) TableName() string {
	return "service_pricelist"
}
