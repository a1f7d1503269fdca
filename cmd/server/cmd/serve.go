package cmd

import (
	"os/signal"
	"syscall"

	"recordkeeper/internal/app/server"

	"github.com/spf13/cobra"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	Long: `Применяет миграции, подключается к базе и обслуживает API
до получения SIGINT или SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if !skipMigrations {
			if err := server.Migrate(cfg.DB, log); err != nil {
				return err
			}
		}

		app, err := server.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "не применять миграции при старте")
}
