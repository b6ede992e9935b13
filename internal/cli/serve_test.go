package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
)

func demoApp(t *testing.T) *app {
	t.Helper()
	cfg := config.FromViper(config.NewViper())
	cfg.TranslationFolder = "../../pkg/translator/translation"
	return &app{cfg: cfg}
}

func TestNewServer_DemoMode(t *testing.T) {
	srv, err := demoApp(t).newServer(context.Background(), true)
	require.NoError(t, err)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/api/auth/login", `{"username":"demo","password":"demo"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	due := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	rec = do(http.MethodPost, "/api/tasks", `{"title":"try the board","description":"demo","due_date":"`+due+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(http.MethodGet, "/api/health/report", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"task_api":"ok"`)
}

func TestNewServer_RejectsUnknownPartitionPolicy(t *testing.T) {
	a := demoApp(t)
	a.cfg.PartitionPolicy = "shuffle"

	_, err := a.newServer(context.Background(), true)

	assert.Error(t, err)
}

func TestRunServer_StopsWithContext(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, runServer(ctx, srv))
}

func TestRunServer_ReportsListenFailure(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}

	err := runServer(context.Background(), srv)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not start server")
}
