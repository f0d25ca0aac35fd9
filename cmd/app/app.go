package main

import (
	"fmt"
	"os"

	config "github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd — точка входа CLI витрины.
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront backend: catalog, filters, carts and quotes",
	Long: `Storefront backend for security and automation equipment.

Available subcommands:
  serve   - Run HTTP and gRPC APIs
  migrate - Apply PostgreSQL migrations, optionally seed the catalog
  catalog - Inspect the catalog and price a cart from the terminal`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup создаёт логгер с уровнем из LOG_LEVEL и загружает конфигурацию.
func setup() (*config.Config, logger.Logger, error) {
	level, err := logger.ParseLevel(config.LoadLogCfg().Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	log := logger.NewSlogLoggerWithLevel(os.Stderr, level)

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		return nil, nil, err
	}

	return cfg, log, nil
}
