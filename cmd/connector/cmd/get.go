package cmd

import (
	"github.com/spf13/cobra"
)

var query []string

var getCmd = &cobra.Command{
	Use:     "get <url>",
	Short:   "Выполнить GET запрос",
	Example: `  connector get https://api.example.com/items -q page=2 -H "Authorization: Bearer t"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(query)
		if err != nil {
			return err
		}
		hdrs, err := parseHeaders(headers)
		if err != nil {
			return err
		}

		res := client.Get(cmd.Context(), args[0], params, hdrs)
		return printResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
	},
}

func init() {
	getCmd.Flags().StringArrayVarP(&query, "query", "q", nil, "параметр запроса key=value, можно повторять")
}
