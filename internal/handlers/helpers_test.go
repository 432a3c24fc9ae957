package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Lombard/internal/handlers"
	"Lombard/internal/model"
	"Lombard/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter собирает роутер поверх отдельной in-memory SQLite.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	h := handlers.NewHandler(
		repo.NewClientRepository(db),
		repo.NewItemRepository(db),
		repo.NewDealRepository(db),
		zap.NewNop().Sugar(),
	)
	return h.Router
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// mockClientRepo — testify-мок репозитория клиентов для путей с ошибками БД.
type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockClientRepo) Get(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockClientRepo) Create(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockClientRepo) Update(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockClientRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.Repository[model.Client] = (*mockClientRepo)(nil)
