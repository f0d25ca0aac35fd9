package main

import (
	"github.com/DRSN-tech/go-storefront/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP and gRPC APIs",
	Long: `Loads the catalog from CATALOG_SOURCE and serves the storefront API.

Redis, Kafka and MinIO are used when REDIS_ENABLED, KAFKA_ENABLED and
MINIO_ENABLED are set. The process stops gracefully on SIGINT/SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	application, err := app.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		return err
	}

	return application.Run(cmd.Context())
}
