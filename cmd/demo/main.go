package main

import (
	"fmt"
	"log"

	"yogurt-planner/internal/config"
	"yogurt-planner/internal/simulation"
)

// Runs the default one-year projection and prints the first few weeks,
// enough to eyeball the order/deliver/consume rhythm.
func main() {
	params, err := config.Resolve(nil)
	if err != nil {
		log.Fatalf("resolve: %v", err)
	}

	result, err := simulation.New().Run(&params)
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	fmt.Printf("start %s, stock %d, delivery delay %d days, packs of %d, ordering on %s\n\n",
		params.StartDate.Format("2006-01-02"), params.InitialStock,
		params.DeliveryDelay, params.PackSize, params.PurchaseDay)

	for _, day := range result.Ledger[:28] {
		marker := "   "
		switch {
		case day.DeliveryDay:
			marker = "[D]"
		case day.PurchaseDay:
			marker = "[P]"
		}
		fmt.Printf("%s %s %-9s stock=%2d consume=%d\n",
			marker, day.Date.Format("2006-01-02"), day.Date.Weekday(), day.StockLevel, day.Consumption)
	}

	fmt.Printf("\n%d purchases over the year, %d units bought, %d consumed\n",
		result.Summary.TotalPurchases, result.Summary.TotalUnitsPurchased,
		result.Summary.TotalUnitsConsumed)
	fmt.Printf("stock avg/min/max: %d / %d / %d\n",
		result.Summary.AverageStockLevel, result.Summary.MinimumStockLevel,
		result.Summary.MaximumStockLevel)
}
