package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pickupdeck/internal/api"
	"pickupdeck/internal/config"
	"pickupdeck/internal/telemetry"
	"pickupdeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options holds the parsed command-line flags.
type options struct {
	configPath string
	backend    string
	driver     string
	orderCode  string
	orderType  string
}

func parseFlags() options {
	var o options

	flag.StringVar(&o.configPath, "config", "", "path to a YAML config file (default $"+config.FileEnv+")")
	flag.StringVar(&o.backend, "backend", "", "backend base URL (default $"+config.BackendURLEnv+")")
	flag.StringVar(&o.driver, "driver", "", "driver whose not-picked sellers to show (default $"+config.DriverEnv+")")
	flag.StringVar(&o.orderCode, "order", "", "open the product details of this order code instead")
	flag.StringVar(&o.orderType, "order-type", "", "metafield order type sent with -order")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pickupdeck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "pickupdeck shows a driver's pending pickups and order contents.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return o
}

// rootRoute picks the first screen: an order when -order is given,
// otherwise the driver's not-picked sellers.
func rootRoute(o options, cfg config.Config) ui.Route {
	if o.orderCode != "" {
		return ui.ProductRoute{OrderCode: o.orderCode, OrderType: o.orderType}
	}
	return ui.NotPickedRoute{DriverName: cfg.DriverName}
}

func run(o options) error {
	cfg, err := config.LoadWithOverrides(o.configPath, config.Config{
		BackendURL: o.backend,
		DriverName: o.driver,
	})
	if err != nil {
		return err
	}

	logFile, err := tea.LogToFile(cfg.LogFile, "pickupdeck")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	tp, err := telemetry.Setup(context.Background(), telemetry.Settings{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    true,
	})
	if err != nil {
		// Tracing is optional; keep going without it.
		log.Printf("main: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("main: telemetry shutdown: %v", err)
		}
	}()

	log.Printf("main: backend=%s driver=%q order=%q", cfg.BackendURL, cfg.DriverName, o.orderCode)

	app, err := ui.NewAppModel(api.New(cfg.BackendURL), rootRoute(o, cfg))
	if err != nil {
		return fmt.Errorf("open first screen: %w (set -driver or -order)", err)
	}
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	o := parseFlags()
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "pickupdeck: %v\n", err)
		os.Exit(1)
	}
}
