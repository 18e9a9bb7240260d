package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pet-health/internal/adapters/storage/sqlstore"
	"pet-health/internal/platform/config"
	"pet-health/internal/platform/logger"
)

var (
	// configFile lo define --config.
	configFile string

	cfg *config.Config
	log logger.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Pet health record backend",
	Long: `Backend del registro de salud de mascotas: mascotas, registros
(vacunas, desparasitación, peso, dieta), recordatorios, estadísticas y exportación.
Sin subcomando arranca el servidor HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "config file (optional; PETHEALTH_* env vars override it)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	log = logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	})
	return nil
}

// openStore abre la base configurada y aplica el esquema.
func openStore(ctx context.Context) (*sqlstore.DB, error) {
	db, err := sqlstore.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
