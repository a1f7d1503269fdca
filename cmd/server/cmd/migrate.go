package cmd

import (
	"recordkeeper/internal/app/server"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Создать схему базы данных",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return server.Migrate(cfg.DB, log)
	},
}
