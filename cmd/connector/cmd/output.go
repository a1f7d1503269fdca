package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"recordkeeper/internal/infrastructure/connector"

	"github.com/fatih/color"
)

func parseParams(pairs []string) (url.Values, error) {
	params := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("неверный параметр %q, ожидается key=value", p)
		}
		params.Add(k, v)
	}
	return params, nil
}

func parseHeaders(lines []string) (map[string]string, error) {
	hdrs := make(map[string]string, len(lines))
	for _, l := range lines {
		k, v, ok := strings.Cut(l, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("неверный заголовок %q, ожидается Name: value", l)
		}
		hdrs[k] = strings.TrimSpace(v)
	}
	return hdrs, nil
}

// printResult writes the decoded value as indented JSON, or reports an
// empty result and returns errNoData.
func printResult(out, errOut io.Writer, res connector.Result) error {
	v, ok := res.Decoded()
	if !ok {
		msg := "пустой ответ"
		if err := res.Err(); err != nil {
			msg += ": " + err.Error()
		}
		fmt.Fprintln(errOut, color.YellowString(msg))
		return errNoData
	}

	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка форматирования ответа: %w", err)
	}
	fmt.Fprintln(out, color.GreenString(string(pretty)))
	return nil
}
