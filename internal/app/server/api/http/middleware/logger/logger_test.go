package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func setup(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(buf, nil))
	config := huma.DefaultConfig("Test", "1.0.0")
	config.CreateHooks = nil
	_, api := humatest.New(t, config)

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{New(log).Middleware()},
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.Status = "OK"
		return out, nil
	})
	return api
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := setup(t, &buf)

	resp := api.Get("/ping")

	require.Equal(t, http.StatusOK, resp.Code)
	id := resp.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestMiddleware_KeepsInboundRequestID(t *testing.T) {
	var buf bytes.Buffer
	api := setup(t, &buf)

	resp := api.Get("/ping", HeaderRequestID+": abc-123")

	assert.Equal(t, "abc-123", resp.Header().Get(HeaderRequestID))
	assert.Contains(t, buf.String(), `"component":"http_logger"`)
}
