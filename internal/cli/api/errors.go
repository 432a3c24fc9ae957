package api

import (
	"fmt"
	"net/http"
)

// APIError — единый тип ошибки клиента API: сеть, статус сервера или разбор ответа.
type APIError struct {
	Op         string // list|get|create|update|remove
	Method     string
	URL        string
	StatusCode int // 0, если ответ не получен
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err == nil:
		return fmt.Sprintf("%s %s: server status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool { return e.StatusCode == http.StatusNotFound }
