package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Lombard/internal/cli/api"
	"Lombard/internal/cli/model"
	"Lombard/internal/config"
	"Lombard/internal/handlers"
	"Lombard/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newLiveServer поднимает настоящий API поверх in-memory SQLite и возвращает конфиг CLI.
func newLiveServer(t *testing.T) *config.Config {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	h := handlers.NewHandler(
		repo.NewClientRepository(db),
		repo.NewItemRepository(db),
		repo.NewDealRepository(db),
		zap.NewNop().Sugar(),
	)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(func() {
		ts.Close()
		_ = sqlDB.Close()
	})
	return testConfig(ts.URL)
}

// newStubServer отдаёт фиксированные ответы по пути.
func newStubServer(t *testing.T, fn http.HandlerFunc) *config.Config {
	t.Helper()
	ts := httptest.NewServer(fn)
	t.Cleanup(ts.Close)
	return testConfig(ts.URL)
}

func testConfig(url string) *config.Config {
	return &config.Config{ServerURL: url, RequestTimeout: 5 * time.Second, LogLevel: "fatal"}
}

// run выполняет команду через Dispatch и возвращает вывод и код выхода.
func run(t *testing.T, cfg *config.Config, args ...string) (string, int) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return out, code
}

func withStdin(t *testing.T, input string) {
	t.Helper()
	old := In
	In = strings.NewReader(input)
	t.Cleanup(func() { In = old })
}

func withNow(t *testing.T, at time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = old })
}

func listClients(t *testing.T, cfg *config.Config) []model.Client {
	t.Helper()
	list, err := api.New(cfg.ServerURL, nil, nil).Clients.List(context.Background())
	require.NoError(t, err)
	return list
}

func addClient(t *testing.T, cfg *config.Config) model.Client {
	t.Helper()
	out, code := run(t, cfg, "client-add", "surname=Іванов", "name=Петро", "passport=AA123456")
	require.Equal(t, 0, code, out)
	list := listClients(t, cfg)
	require.NotEmpty(t, list)
	return list[len(list)-1]
}
