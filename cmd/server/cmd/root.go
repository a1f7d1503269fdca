// cmd/server/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"recordkeeper/internal/app/server/config"
	"recordkeeper/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	envFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "recordkeeper",
	Short: "Recordkeeper - REST API для хранения записей",
	Long: `Recordkeeper обслуживает CRUD API над таблицей записей.

Конфигурация читается из .env и переменных окружения
(DB_DRIVER, DATABASE_URI, RUN_ADDRESS, API_PREFIX, ...).`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}

	var err error
	cfg, err = config.Load(envFiles...)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.New(cfg.Env)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", ".env файл с настройками")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
