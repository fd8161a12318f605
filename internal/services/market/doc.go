// Package market reads the currency exchange board and the market-trends
// analytics (price, volume and regional popularity over a date range).
package market
