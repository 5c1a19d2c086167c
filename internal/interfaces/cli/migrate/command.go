package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkpress-io/inkpress/internal/infrastructure/config"
	"github.com/inkpress-io/inkpress/internal/infrastructure/database"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to date with the current persistence models.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied", "environment", env)
	return nil
}
