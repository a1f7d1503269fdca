package connector

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ObserveOutbound(method, outcome string, d time.Duration) {
	m.Called(method, outcome, d)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func server(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Post(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		body    string
		want    any
		decoded bool
	}{
		{name: "object", status: http.StatusOK, body: `{"a":1}`, want: map[string]any{"a": 1.0}, decoded: true},
		{name: "array", status: http.StatusOK, body: `[1,"x"]`, want: []any{1.0, "x"}, decoded: true},
		{name: "zero body", status: http.StatusOK, body: `0`},
		{name: "zero float is data", status: http.StatusOK, body: `0.0`, want: 0.0, decoded: true},
		{name: "ten is data", status: http.StatusOK, body: `10`, want: 10.0, decoded: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"a":1}`},
		{name: "created is not ok", status: http.StatusCreated, body: `{"a":1}`},
		{name: "empty body", status: http.StatusOK, body: ``},
		{name: "whitespace body", status: http.StatusOK, body: " \n"},
		{name: "null", status: http.StatusOK, body: `null`},
		{name: "false", status: http.StatusOK, body: `false`},
		{name: "invalid json", status: http.StatusOK, body: `{"a":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := server(t, tt.status, tt.body)
			c := New(srv.Client(), slog.Default())

			res := c.Post(ctx, srv.URL, map[string]string{"Content-Type": "application/json"}, []byte(`{}`))

			v, ok := res.Decoded()
			assert.Equal(t, tt.decoded, ok)
			assert.Equal(t, !tt.decoded, res.Empty())
			assert.Equal(t, tt.want, v)
			assert.NoError(t, res.Err())
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := server(t, http.StatusOK, `{}`)
	addr := srv.URL
	srv.Close()

	var buf bytes.Buffer
	c := New(http.DefaultClient, newLogger(&buf))

	res := c.Get(context.Background(), addr, nil, nil)

	assert.True(t, res.Empty())
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "GET request failed")
}

func TestClient_NonOKIsLogged(t *testing.T) {
	srv := server(t, http.StatusTeapot, "short and stout")
	var buf bytes.Buffer
	c := New(srv.Client(), newLogger(&buf))

	res := c.Post(context.Background(), srv.URL, nil, nil)

	assert.True(t, res.Empty())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), "short and stout")
}

func TestClient_GetRequest(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := New(srv.Client(), slog.Default())
	res := c.Get(context.Background(), srv.URL+"/search?lang=en",
		url.Values{"q": {"widgets"}, "page": {"2"}},
		map[string]string{"Authorization": "Bearer t"},
	)

	require.False(t, res.Empty())
	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/search", got.URL.Path)
	assert.Equal(t, "en", got.URL.Query().Get("lang"))
	assert.Equal(t, "widgets", got.URL.Query().Get("q"))
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "Bearer t", got.Header.Get("Authorization"))
}

func TestClient_PostSendsBody(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	res := New(srv.Client(), slog.Default()).Post(context.Background(), srv.URL, nil, []byte(`{"x":1}`))

	v, ok := res.Decoded()
	assert.True(t, ok)
	assert.Equal(t, map[string]any{}, v)
	assert.Equal(t, `{"x":1}`, string(body))
}

func TestClient_Detailed(t *testing.T) {
	ctx := context.Background()

	t.Run("status error carries code and body", func(t *testing.T) {
		srv := server(t, http.StatusBadGateway, "upstream down")

		_, err := New(srv.Client(), slog.Default()).GetDetailed(ctx, srv.URL, nil, nil)

		require.ErrorIs(t, err, ErrUnexpectedStatus)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusBadGateway, se.Code)
		assert.Equal(t, "upstream down", se.Body)
	})

	t.Run("decode", func(t *testing.T) {
		srv := server(t, http.StatusOK, "<html>")

		_, err := New(srv.Client(), slog.Default()).PostDetailed(ctx, srv.URL, nil, nil)

		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("transport", func(t *testing.T) {
		doer := new(MockDoer)
		doer.On("Do", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

		_, err := New(doer, slog.Default()).GetDetailed(ctx, "http://example.invalid", nil, nil)

		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := New(new(MockDoer), slog.Default()).GetDetailed(ctx, "http://[::1", nil, nil)

		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestClient_Strict(t *testing.T) {
	srv := server(t, http.StatusInternalServerError, "boom")

	res := New(srv.Client(), slog.Default(), WithStrict(true)).Get(context.Background(), srv.URL, nil, nil)

	assert.True(t, res.Empty())
	assert.ErrorIs(t, res.Err(), ErrUnexpectedStatus)
}

func TestClient_Observer(t *testing.T) {
	srv := server(t, http.StatusOK, "null")
	observer := new(MockObserver)
	observer.On("ObserveOutbound", http.MethodPost, "empty", mock.AnythingOfType("time.Duration")).Return()

	New(srv.Client(), slog.Default(), WithObserver(observer)).Post(context.Background(), srv.URL, nil, nil)

	observer.AssertExpectations(t)
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(5 * time.Second)

	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.IsType(t, &http.Transport{}, c.Transport)
}
