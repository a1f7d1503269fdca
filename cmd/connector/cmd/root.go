// cmd/connector/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"recordkeeper/internal/app/connector/config"
	"recordkeeper/internal/infrastructure/connector"
	"recordkeeper/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	headers []string
	strict  bool
	client  *connector.Client
)

// errNoData is returned when the remote call produced nothing usable.
var errNoData = errors.New("нет данных")

var rootCmd = &cobra.Command{
	Use:   "connector",
	Short: "Connector - вызов внешних JSON API",
	Long: `Connector выполняет один GET или POST запрос к внешнему
HTTP endpoint и печатает разобранный JSON ответ.

Любая ошибка (сеть, статус не 200, невалидный JSON) пишется в лог,
а команда завершается с кодом 1.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoData) {
			fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		}
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}

	log := logger.New(cfg.Env)
	client = connector.New(connector.NewHTTPClient(cfg.Timeout), log, connector.WithStrict(cfg.Strict))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", nil, `заголовок "Name: value", можно повторять`)
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "печатать причину пустого ответа")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
}
