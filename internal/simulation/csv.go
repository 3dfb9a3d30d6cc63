package simulation

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

func WriteLedgerCSV(path string, ledger []DailyStockLevel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date",
		"weekday",
		"stock_level",
		"delivery_day",
		"purchase_day",
		"consumption",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range ledger {
		rec := []string{
			fmtDate(row.Date),
			row.Date.Weekday().String(),
			strconv.Itoa(row.StockLevel),
			strconv.FormatBool(row.DeliveryDay),
			strconv.FormatBool(row.PurchaseDay),
			strconv.Itoa(row.Consumption),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}
