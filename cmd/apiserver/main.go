// API server entry point for the Takweol case-analysis service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/takweol/casematch/internal/bootstrap"
	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		config.Watch(configPath, func(next *config.Config) {
			if r, ok := app.Logger.(logging.LevelReloader); ok && next.Log.Level != cfg.Log.Level {
				r.SetLevel(next.Log.Level)
				app.Logger.Info("log level reloaded", logging.String("level", next.Log.Level))
				cfg.Log.Level = next.Log.Level
			}
			app.Logger.Warn("configuration file changed, restart to apply remaining settings")
		})
	}
	return app.Run(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: %s not found, using environment configuration\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}
