package main

import (
	"github.com/DRSN-tech/go-storefront/internal/app"
	"github.com/spf13/cobra"
)

var seedCatalog bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL migrations",
	Long: `Applies migrations from MIGRATIONS_DIR to the database configured by POSTGRES_*.

With --seed the catalog fixture (or CATALOG_FILE) is upserted in a single
transaction, after which the catalog can be served with CATALOG_SOURCE=postgres.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&seedCatalog, "seed", false, "upsert the catalog fixture after migrating")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	return app.Migrate(cmd.Context(), cfg, log, seedCatalog)
}
