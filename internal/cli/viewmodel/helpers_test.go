package viewmodel

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

// mockStore — мок API-ресурса: список, удаление, чтение и запись.
type mockStore[T, P any] struct{ mock.Mock }

func (m *mockStore[T, P]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]T); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockStore[T, P]) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockStore[T, P]) Get(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}
func (m *mockStore[T, P]) Create(ctx context.Context, p P) (T, error) {
	args := m.Called(ctx, p)
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}
func (m *mockStore[T, P]) Update(ctx context.Context, id string, p P) (T, error) {
	args := m.Called(ctx, id, p)
	v, _ := args.Get(0).(T)
	return v, args.Error(1)
}

// fakeHost отвечает заранее заданным confirm и запоминает все вызовы.
type fakeHost struct {
	mu      sync.Mutex
	answer  bool
	prompts []string
	notes   []string
}

func (h *fakeHost) Confirm(prompt string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prompts = append(h.prompts, prompt)
	return h.answer
}

func (h *fakeHost) Notify(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notes = append(h.notes, message)
}

type fakeNav struct{ routes []string }

func (n *fakeNav) Navigate(route string) { n.routes = append(n.routes, route) }
