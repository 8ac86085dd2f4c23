package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattear/waitlist-watch/internal/adapter/upstream"
	"github.com/mattear/waitlist-watch/internal/middleware"
	"github.com/mattear/waitlist-watch/internal/port"
	"github.com/mattear/waitlist-watch/internal/service"
)

type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, port.ErrSnapshotNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// newTestApp wires the full route surface against a fake upstream server
// and an in-memory store, mirroring cmd/server/main.go.
func newTestApp(upstreamURL, secret string) (*fiber.App, *memStore) {
	store := &memStore{data: map[string][]byte{}}

	client := upstream.NewTRPCClient(upstream.ClientConfig{
		URL:     upstreamURL,
		Source:  "nextjs-react",
		Timeout: 5 * time.Second,
	})

	app := fiber.New()

	NewStatusHandler(service.NewStatusService(store, 0)).Register(app)

	cron := app.Group("/api/cron", middleware.CronAuth(secret))
	NewPollHandler(service.NewPollService(client, store, "abc@state.edu")).Register(cron)

	return app, store
}

func TestTrigger_EndToEnd(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"data":{"json":{"success":true,"schoolRank":42,"schoolSignupCount":1000}}}}` + "\n"))
	}))
	defer upstreamSrv.Close()

	app, store := newTestApp(upstreamSrv.URL, "s3cret")

	req := httptest.NewRequest("GET", "/api/cron/poll", nil)
	req.Header.Set("Authorization", "Bearer s3cret")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"ok":true`)
	assert.Contains(t, string(body), `"schoolRank":42`)
	assert.NotEmpty(t, store.data)

	// The status page renders the stored snapshot.
	pageResp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, pageResp.StatusCode)

	page, _ := io.ReadAll(pageResp.Body)
	assert.Contains(t, string(page), "Current rank: #42")
	assert.Contains(t, string(page), "Signup count: 1000")
}

func TestTrigger_UnauthorizedDoesNotStore(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"schoolRank":1}` + "\n"))
	}))
	defer upstreamSrv.Close()

	app, store := newTestApp(upstreamSrv.URL, "s3cret")

	req := httptest.NewRequest("GET", "/api/cron/poll", nil)
	req.Header.Set("Authorization", "Bearer wrong")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, store.data)
}

func TestTrigger_UpstreamDown(t *testing.T) {
	// Point at a closed server so the outbound call fails outright.
	deadSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := deadSrv.URL
	deadSrv.Close()

	app, store := newTestApp(deadURL, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cron/poll", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, store.data)
}

func TestStatusPage_NoDataYet(t *testing.T) {
	app, _ := newTestApp("http://127.0.0.1:0", "")

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(page), "No data yet")
}

func TestStatusJSON(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"data":{"json":{"success":true,"schoolSignupCount":7}}}}` + "\n"))
	}))
	defer upstreamSrv.Close()

	app, _ := newTestApp(upstreamSrv.URL, "")

	_, err := app.Test(httptest.NewRequest("GET", "/api/cron/poll", nil))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/status", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"hasData":true`)
	assert.Contains(t, string(body), `"signupCountDisplay":"7"`)
	assert.Contains(t, string(body), `"rankDisplay":"unknown"`)
}
