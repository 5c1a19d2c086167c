package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkpress-io/inkpress/internal/interfaces/cli/migrate"
	"github.com/inkpress-io/inkpress/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkpress",
		Short: "Inkpress - serialized fiction commerce backend",
		Long:  `Inkpress sells serialized fiction: catalog, carts, hosted checkout, subscriptions, and reader entitlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
