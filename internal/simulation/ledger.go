package simulation

import "time"

// PurchaseRecommendation records one ordering decision made on a purchase day.
// StockBeforePurchase is the stock observed when the order was placed (after
// any same-day delivery); StockAfterDelivery is the projection once the order
// lands.
type PurchaseRecommendation struct {
	OrderDate           time.Time
	DeliveryDate        time.Time
	PacksToBuy          int
	StockBeforePurchase int
	StockAfterDelivery  int
}

// DailyStockLevel is one row of per-day output.
// This is the primary artifact for "what happened" over the simulated year.
//
// StockLevel is the level after any same-day delivery and before that day's
// consumption; it is the value the engine uses for purchase decisions and for
// the min/max/average statistics.
type DailyStockLevel struct {
	Date        time.Time
	StockLevel  int
	DeliveryDay bool
	PurchaseDay bool
	Consumption int
}

// Summary aggregates the full run.
type Summary struct {
	TotalPurchases      int
	TotalUnitsPurchased int
	TotalUnitsConsumed  int
	AverageStockLevel   int
	MinimumStockLevel   int
	MaximumStockLevel   int
	AveragePacksToBuy   float64
}

// Result is the output bundle of one run: the purchase schedule and the daily
// ledger, both in chronological order, plus the summary.
type Result struct {
	Recommendations []PurchaseRecommendation
	Ledger          []DailyStockLevel
	Summary         Summary
}
