package models

import (
	"time"

	"yogurt-planner/internal/model"
	"yogurt-planner/internal/simulation"
)

const dateLayout = "2006-01-02"

// SimulateResponse is the full result of one simulation run.
type SimulateResponse struct {
	ID              string                   `json:"id"`
	Recommendations []PurchaseRecommendation `json:"purchase_recommendations"`
	Ledger          []DailyStockLevel        `json:"daily_stock_levels"`
	Summary         Summary                  `json:"summary"`
}

// PurchaseRecommendation is one ordering event.
type PurchaseRecommendation struct {
	OrderDate           string `json:"order_date"`
	DeliveryDate        string `json:"delivery_date"`
	PacksToBuy          int    `json:"packs_to_buy"`
	StockBeforePurchase int    `json:"stock_before_purchase"`
	StockAfterDelivery  int    `json:"stock_after_delivery"`
}

// DailyStockLevel is one day of the ledger.
type DailyStockLevel struct {
	Date        string `json:"date"`
	StockLevel  int    `json:"stock_level"`
	DeliveryDay bool   `json:"delivery_day"`
	PurchaseDay bool   `json:"purchase_day"`
	Consumption int    `json:"consumption"`
}

// Summary contains the aggregated run statistics.
type Summary struct {
	TotalPurchases      int     `json:"total_purchases"`
	TotalUnitsPurchased int     `json:"total_units_purchased"`
	TotalUnitsConsumed  int     `json:"total_units_consumed"`
	AverageStockLevel   int     `json:"average_stock_level"`
	MinimumStockLevel   int     `json:"minimum_stock_level"`
	MaximumStockLevel   int     `json:"maximum_stock_level"`
	AveragePacksToBuy   float64 `json:"average_packs_to_buy"`
}

// DefaultsResponse describes the built-in default configuration.
type DefaultsResponse struct {
	StartDate        string         `json:"start_date"`
	InitialStock     int            `json:"initial_stock"`
	DeliveryDelay    int            `json:"delivery_delay"`
	PackSize         int            `json:"pack_size"`
	PurchaseDay      string         `json:"purchase_day"`
	DailyConsumption map[string]int `json:"daily_consumption"`
}

// ErrorResponse is the error payload for every non-2xx response.
type ErrorResponse struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

// NewErrorResponse stamps an error payload with the current time.
func NewErrorResponse(status int, errorName, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     errorName,
		Message:   message,
	}
}

// NewSimulateResponse converts an engine result into the wire shape.
func NewSimulateResponse(id string, result *simulation.Result) SimulateResponse {
	recs := make([]PurchaseRecommendation, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		recs = append(recs, PurchaseRecommendation{
			OrderDate:           r.OrderDate.Format(dateLayout),
			DeliveryDate:        r.DeliveryDate.Format(dateLayout),
			PacksToBuy:          r.PacksToBuy,
			StockBeforePurchase: r.StockBeforePurchase,
			StockAfterDelivery:  r.StockAfterDelivery,
		})
	}

	ledger := make([]DailyStockLevel, 0, len(result.Ledger))
	for _, d := range result.Ledger {
		ledger = append(ledger, DailyStockLevel{
			Date:        d.Date.Format(dateLayout),
			StockLevel:  d.StockLevel,
			DeliveryDay: d.DeliveryDay,
			PurchaseDay: d.PurchaseDay,
			Consumption: d.Consumption,
		})
	}

	return SimulateResponse{
		ID:              id,
		Recommendations: recs,
		Ledger:          ledger,
		Summary: Summary{
			TotalPurchases:      result.Summary.TotalPurchases,
			TotalUnitsPurchased: result.Summary.TotalUnitsPurchased,
			TotalUnitsConsumed:  result.Summary.TotalUnitsConsumed,
			AverageStockLevel:   result.Summary.AverageStockLevel,
			MinimumStockLevel:   result.Summary.MinimumStockLevel,
			MaximumStockLevel:   result.Summary.MaximumStockLevel,
			AveragePacksToBuy:   result.Summary.AveragePacksToBuy,
		},
	}
}

// NewDefaultsResponse converts the default parameter set into the wire shape.
func NewDefaultsResponse(params model.Params) DefaultsResponse {
	consumption := make(map[string]int, len(params.Consumption))
	for day, qty := range params.Consumption {
		consumption[day.String()] = qty
	}
	return DefaultsResponse{
		StartDate:        params.StartDate.Format(dateLayout),
		InitialStock:     params.InitialStock,
		DeliveryDelay:    params.DeliveryDelay,
		PackSize:         params.PackSize,
		PurchaseDay:      params.PurchaseDay.String(),
		DailyConsumption: consumption,
	}
}
