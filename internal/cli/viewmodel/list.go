package viewmodel

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ListState — состояние экрана списка.
type ListState int

const (
	ListIdle ListState = iota
	ListLoading
	ListLoaded
	ListFailed
)

func (s ListState) String() string {
	switch s {
	case ListLoading:
		return "loading"
	case ListLoaded:
		return "loaded"
	case ListFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ListMessages are the entity-specific texts of a list screen.
type ListMessages struct {
	LoadFailed    string // e.g. "Помилка завантаження клієнтів"
	ConfirmDelete string // e.g. "Видалити клієнта?"
}

// ListSnapshot is a copy of the list state for rendering.
type ListSnapshot[T any] struct {
	State   ListState
	Rows    []T
	Message string
	Err     error
}

// ListViewModel drives one list screen. Concurrent refreshes are not
// coalesced: the last one to resolve wins.
type ListViewModel[T any] struct {
	src    ListSource[T]
	host   Host
	logger *zap.SugaredLogger
	msgs   ListMessages

	mu    sync.Mutex
	state ListState
	rows  []T
	err   error
}

// NewListViewModel creates an idle list with no rows.
func NewListViewModel[T any](src ListSource[T], host Host, logger *zap.SugaredLogger, msgs ListMessages) *ListViewModel[T] {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ListViewModel[T]{src: src, host: host, logger: logger, msgs: msgs}
}

// Refresh reloads the collection. On failure the previously loaded rows stay
// in place and the returned *FetchError carries the displayable message.
func (vm *ListViewModel[T]) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	vm.state = ListLoading
	vm.mu.Unlock()

	rows, err := vm.src.List(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		vm.logger.Errorw("list load failed", "message", vm.msgs.LoadFailed, "error", err)
		vm.state = ListFailed
		vm.err = &FetchError{Message: vm.msgs.LoadFailed, Err: err}
		return vm.err
	}
	vm.state = ListLoaded
	vm.rows = rows
	vm.err = nil
	return nil
}

// Remove deletes the record after the host confirms. It reports whether the
// delete call succeeded; a successful delete is followed by one Refresh.
func (vm *ListViewModel[T]) Remove(ctx context.Context, id string) (bool, error) {
	if !vm.host.Confirm(vm.msgs.ConfirmDelete) {
		return false, nil
	}
	if err := vm.src.Remove(ctx, id); err != nil {
		vm.logger.Errorw("delete failed", "id", id, "error", err)
		vm.host.Notify(MsgDeleteFailed)
		return false, &DeleteError{Message: MsgDeleteFailed, Err: err}
	}
	return true, vm.Refresh(ctx)
}

// Snapshot returns a copy of the current state.
func (vm *ListViewModel[T]) Snapshot() ListSnapshot[T] {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s := ListSnapshot[T]{State: vm.state, Err: vm.err, Message: Message(vm.err)}
	if vm.rows != nil {
		s.Rows = append([]T(nil), vm.rows...)
	}
	return s
}
