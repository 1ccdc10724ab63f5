package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymstack/internal/interfaces/cli/migrate"
	"gymstack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymstack",
		Short: "Gymstack - multi-tenant gym management platform",
		Long:  `Gymstack is a multi-tenant gym management platform with members, memberships, plans, attendance and billing entitlements.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
