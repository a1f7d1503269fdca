package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var data string

var postCmd = &cobra.Command{
	Use:   "post <url>",
	Short: "Выполнить POST запрос",
	Long: `Отправляет тело из -d. Без -d тело читается из stdin,
если stdin не терминал.`,
	Example: `  echo '{"a":1}' | connector post https://api.example.com/items -H "Content-Type: application/json"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hdrs, err := parseHeaders(headers)
		if err != nil {
			return err
		}

		body, err := requestBody(cmd)
		if err != nil {
			return err
		}

		res := client.Post(cmd.Context(), args[0], hdrs, body)
		return printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
	},
}

func requestBody(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed("data") {
		return []byte(data), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	body, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения stdin: %w", err)
	}
	return body, nil
}

func init() {
	postCmd.Flags().StringVarP(&data, "data", "d", "", "тело запроса")
}
