package types

// Currency is one exchange-rate entry of the currency board.
type Currency struct {
	Code        string  `json:"code"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

// MarketTrends is the analytics payload for a date range. Field names match
// the backend's camelCase keys.
type MarketTrends struct {
	PriceTrend       []PricePoint  `json:"priceTrend"`
	SalesVolume      []SalesPoint  `json:"salesVolume"`
	PopularityRegion []RegionSales `json:"popularityRegion"`
}

// PricePoint is one day's average sale price.
type PricePoint struct {
	Date     string  `json:"date"`
	AvgPrice float64 `json:"avg_price"`
}

// SalesPoint is one day's sales count.
type SalesPoint struct {
	Date        string `json:"date"`
	SalesVolume int64  `json:"sales_volume"`
}

// RegionSales is the sales total for one region.
type RegionSales struct {
	Region     string `json:"region"`
	SalesCount int64  `json:"sales_count"`
}
