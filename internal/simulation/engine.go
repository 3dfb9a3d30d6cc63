package simulation

import (
	"math"
	"time"

	"yogurt-planner/internal/model"
)

const (
	// horizonDays is the fixed simulation span: 365 iterations from the start
	// date, independent of leap years.
	horizonDays = 365

	// bufferDays extends the purchase look-ahead past the delivery delay so
	// an order covers the lag plus a full week.
	bufferDays = 7
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run validates params and executes the day-stepping projection over one year.
// Validation failures return *model.InvalidParamsError before any day is
// simulated; a successful run always yields a complete 365-row ledger.
func (e *Engine) Run(params *model.Params) (*Result, error) {
	if params == nil {
		return nil, &model.InvalidParamsError{Reason: "parameters are required"}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var recs []PurchaseRecommendation
	ledger := make([]DailyStockLevel, 0, horizonDays)
	// Pending deliveries indexed by delivery date. At most one purchase
	// decision is made per purchase day, so delivery dates never collide.
	deliveries := make(map[time.Time]int)

	currentStock := params.InitialStock
	totalPurchased := 0
	totalConsumed := 0
	sumStock := 0
	minStock := math.MaxInt
	maxStock := math.MinInt

	date := params.StartDate
	for day := 0; day < horizonDays; day++ {
		weekday := date.Weekday()
		consumption := params.Consumption.For(weekday)

		deliveryDay := false
		if idx, ok := deliveries[date]; ok {
			delivered := recs[idx].PacksToBuy * params.PackSize
			currentStock += delivered
			totalPurchased += delivered
			deliveryDay = true
		}

		// Statistics use the stock after any delivery, before consumption.
		sumStock += currentStock
		if currentStock < minStock {
			minStock = currentStock
		}
		if currentStock > maxStock {
			maxStock = currentStock
		}

		ledger = append(ledger, DailyStockLevel{
			Date:        date,
			StockLevel:  currentStock,
			DeliveryDay: deliveryDay,
			PurchaseDay: weekday == params.PurchaseDay,
			Consumption: consumption,
		})

		if weekday == params.PurchaseDay {
			projected := projectConsumption(params, date)
			needed := projected - currentStock
			if needed < 0 {
				needed = 0
			}
			// Round up to whole packs.
			packsToBuy := (needed + params.PackSize - 1) / params.PackSize
			if packsToBuy > 0 {
				rec := PurchaseRecommendation{
					OrderDate:           date,
					DeliveryDate:        date.AddDate(0, 0, params.DeliveryDelay),
					PacksToBuy:          packsToBuy,
					StockBeforePurchase: currentStock,
					StockAfterDelivery:  currentStock + packsToBuy*params.PackSize,
				}
				deliveries[rec.DeliveryDate] = len(recs)
				recs = append(recs, rec)
			}
		}

		// Stock is clamped at zero; only what is on hand can be consumed.
		consumed := consumption
		if consumed > currentStock {
			consumed = currentStock
		}
		currentStock -= consumed
		totalConsumed += consumed

		date = date.AddDate(0, 0, 1)
	}

	summary := Summary{
		TotalPurchases:      len(recs),
		TotalUnitsPurchased: totalPurchased,
		TotalUnitsConsumed:  totalConsumed,
		AverageStockLevel:   sumStock / len(ledger),
		MinimumStockLevel:   minStock,
		MaximumStockLevel:   maxStock,
		AveragePacksToBuy:   averagePacks(recs),
	}

	return &Result{
		Recommendations: recs,
		Ledger:          ledger,
		Summary:         summary,
	}, nil
}

// projectConsumption sums the profile over the look-ahead window
// (delivery delay + one week) starting at from.
func projectConsumption(params *model.Params, from time.Time) int {
	window := params.DeliveryDelay + bufferDays
	total := 0
	d := from
	for i := 0; i < window; i++ {
		total += params.Consumption.For(d.Weekday())
		d = d.AddDate(0, 0, 1)
	}
	return total
}

func averagePacks(recs []PurchaseRecommendation) float64 {
	if len(recs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range recs {
		sum += r.PacksToBuy
	}
	return float64(sum) / float64(len(recs))
}
