package viewmodel

import (
	"errors"
	"fmt"
)

// User-facing messages shared by every screen.
const (
	MsgRequired     = "Заповніть всі обов'язкові поля"
	MsgDeleteFailed = "Помилка видалення"
)

var (
	// ErrUnknownField is returned by SetField for a field the draft does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrNotReady is returned by Submit while the record is still loading.
	ErrNotReady = errors.New("form is not ready")
	// ErrUnknownKind is recorded for a reference kind the resolver cannot load.
	ErrUnknownKind = errors.New("unknown reference kind")
)

// FetchError — ошибка загрузки списка или записи.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError — ошибка клиентской проверки формы; на сервер ничего не отправляется.
type ValidationError struct {
	Field   string // пусто для набора обязательных полей
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Field)
}
func (e *ValidationError) Unwrap() error { return e.Err }

// SaveError — ошибка создания или обновления записи.
type SaveError struct {
	Message string
	Err     error
}

func (e *SaveError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }

// DeleteError — ошибка удаления записи.
type DeleteError struct {
	Message string
	Err     error
}

func (e *DeleteError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }
func (e *DeleteError) Unwrap() error { return e.Err }

// Message extracts the displayable text from any view-model error.
// Errors of other types yield their Error() text.
func Message(err error) string {
	var (
		fe *FetchError
		ve *ValidationError
		se *SaveError
		de *DeleteError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &fe):
		return fe.Message
	case errors.As(err, &se):
		return se.Message
	case errors.As(err, &de):
		return de.Message
	default:
		return err.Error()
	}
}
