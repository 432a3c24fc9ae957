package viewmodel

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// FormState — состояние экрана формы.
type FormState int

const (
	FormPristine FormState = iota
	FormLoading
	FormReady
	FormSaving
	FormDone
	FormFailed // загрузка записи не удалась; экземпляр больше не используется
)

func (s FormState) String() string {
	switch s {
	case FormLoading:
		return "loading"
	case FormReady:
		return "ready"
	case FormSaving:
		return "saving"
	case FormDone:
		return "done"
	case FormFailed:
		return "failed"
	default:
		return "pristine"
	}
}

// FormMessages are the entity-specific texts and the route of a form screen.
type FormMessages struct {
	LoadFailed   string // "Помилка завантаження клієнта"
	CreateFailed string // "Помилка створення клієнта"
	UpdateFailed string // "Помилка збереження клієнта"
	ListRoute    string
}

// FormSnapshot is a copy of the form state for rendering.
type FormSnapshot[T any] struct {
	State   FormState
	ID      string // пусто в режиме создания
	Values  map[string]string
	Message string
	Err     error
	Saved   T
}

// FormViewModel drives a create or edit screen over a typed draft.
type FormViewModel[T, P any] struct {
	store  FormStore[T, P]
	nav    Navigator
	logger *zap.SugaredLogger
	msgs   FormMessages

	mu    sync.Mutex
	draft Draft[T, P]
	id    string
	state FormState
	err   error
	saved T
}

// NewFormViewModel creates a form in create mode.
func NewFormViewModel[T, P any](store FormStore[T, P], draft Draft[T, P], nav Navigator, logger *zap.SugaredLogger, msgs FormMessages) *FormViewModel[T, P] {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &FormViewModel[T, P]{store: store, draft: draft, nav: nav, logger: logger, msgs: msgs}
}

// Load switches the form to edit mode for id and fills the draft from the
// stored record. A failure is terminal for this form.
func (vm *FormViewModel[T, P]) Load(ctx context.Context, id string) error {
	vm.mu.Lock()
	vm.id = id
	vm.state = FormLoading
	vm.err = nil
	vm.mu.Unlock()

	rec, err := vm.store.Get(ctx, id)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err != nil {
		vm.logger.Errorw("record load failed", "id", id, "error", err)
		vm.state = FormFailed
		vm.err = &FetchError{Message: vm.msgs.LoadFailed, Err: err}
		return vm.err
	}
	vm.draft.Fill(rec)
	vm.state = FormReady
	return nil
}

// SetField updates one draft field without validating it.
func (vm *FormViewModel[T, P]) SetField(name, value string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if err := vm.draft.Set(name, value); err != nil {
		return err
	}
	if vm.state == FormPristine {
		vm.state = FormReady
	}
	return nil
}

// Submit validates the draft, then creates or updates the record. On success
// the form is done and the navigator is sent to the list route. On failure
// the draft is left intact for correction.
func (vm *FormViewModel[T, P]) Submit(ctx context.Context) error {
	vm.mu.Lock()
	switch vm.state {
	case FormFailed:
		err := vm.err
		vm.mu.Unlock()
		return err
	case FormLoading:
		vm.mu.Unlock()
		return ErrNotReady
	}
	payload, err := vm.draft.Payload()
	if err != nil {
		vm.state = FormReady
		vm.err = err
		vm.mu.Unlock()
		return err
	}
	id := vm.id
	vm.state = FormSaving
	vm.err = nil
	vm.mu.Unlock()

	var rec T
	msg := vm.msgs.CreateFailed
	if id == "" {
		rec, err = vm.store.Create(ctx, payload)
	} else {
		msg = vm.msgs.UpdateFailed
		rec, err = vm.store.Update(ctx, id, payload)
	}

	vm.mu.Lock()
	if err != nil {
		vm.logger.Errorw("save failed", "id", id, "error", err)
		vm.state = FormReady
		vm.err = &SaveError{Message: msg, Err: err}
		err = vm.err
		vm.mu.Unlock()
		return err
	}
	vm.state = FormDone
	vm.saved = rec
	vm.mu.Unlock()

	if vm.nav != nil {
		vm.nav.Navigate(vm.msgs.ListRoute)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (vm *FormViewModel[T, P]) Snapshot() FormSnapshot[T] {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return FormSnapshot[T]{
		State:   vm.state,
		ID:      vm.id,
		Values:  vm.draft.Values(),
		Message: Message(vm.err),
		Err:     vm.err,
		Saved:   vm.saved,
	}
}
