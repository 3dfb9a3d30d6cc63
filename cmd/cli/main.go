package main

import (
	"flag"
	"fmt"
	"os"

	"yogurt-planner/internal/config"
	"yogurt-planner/internal/simulation"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "defaults":
		cmdDefaults()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate [--config overrides.yaml] [--out results/ledger.csv]")
	fmt.Println("  cli defaults")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate projects yogurt stock day by day over one year and prints the summary")
	fmt.Println("  - defaults prints the built-in configuration as YAML (a usable --config template)")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML overrides (optional)")
	outPath := fs.String("out", "", "Output CSV path for the daily ledger (optional)")
	_ = fs.Parse(args)

	var overrides *config.Overrides
	if *cfgPath != "" {
		o, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		overrides = o
	}

	params, err := config.Resolve(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve parameters: %v\n", err)
		os.Exit(1)
	}

	engine := simulation.New()
	result, err := engine.Run(&params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}

	if *outPath != "" {
		if err := simulation.WriteLedgerCSV(*outPath, result.Ledger); err != nil {
			fmt.Fprintf(os.Stderr, "write ledger: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d ledger rows to %s\n", len(result.Ledger), *outPath)
	}

	fmt.Printf("simulated %d days starting %s\n",
		len(result.Ledger), params.StartDate.Format("2006-01-02"))
	fmt.Println("")
	fmt.Println("purchase schedule:")
	for _, r := range result.Recommendations {
		fmt.Printf("  order %s  deliver %s  packs=%d  stock %d -> %d\n",
			r.OrderDate.Format("2006-01-02"), r.DeliveryDate.Format("2006-01-02"),
			r.PacksToBuy, r.StockBeforePurchase, r.StockAfterDelivery)
	}
	fmt.Println("")
	printSummary(result.Summary)
}

func cmdDefaults() {
	params, _ := config.Resolve(nil)

	consumption := make(map[string]int, len(params.Consumption))
	for day, qty := range params.Consumption {
		consumption[day.String()] = qty
	}

	out := struct {
		InitialStock     int            `yaml:"initial_stock"`
		DeliveryDelay    int            `yaml:"delivery_delay"`
		PackSize         int            `yaml:"pack_size"`
		PurchaseDay      string         `yaml:"purchase_day"`
		DailyConsumption map[string]int `yaml:"daily_consumption"`
	}{
		InitialStock:     params.InitialStock,
		DeliveryDelay:    params.DeliveryDelay,
		PackSize:         params.PackSize,
		PurchaseDay:      params.PurchaseDay.String(),
		DailyConsumption: consumption,
	}

	raw, err := yaml.Marshal(out)
	if err != nil {
		panic(err)
	}
	os.Stdout.Write(raw)
}

func printSummary(s simulation.Summary) {
	fmt.Println("summary:")
	fmt.Printf("  purchases:        %d (avg %.2f packs each)\n", s.TotalPurchases, s.AveragePacksToBuy)
	fmt.Printf("  units purchased:  %d\n", s.TotalUnitsPurchased)
	fmt.Printf("  units consumed:   %d\n", s.TotalUnitsConsumed)
	fmt.Printf("  stock avg/min/max: %d / %d / %d\n",
		s.AverageStockLevel, s.MinimumStockLevel, s.MaximumStockLevel)
}
