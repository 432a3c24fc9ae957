package handlers

import (
	"errors"
	"net/http"

	"Lombard/internal/repo"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// applyFunc переносит тело запроса в модель. Ошибка означает 400.
type applyFunc[M, R any] func(req R, m *M, creating bool) error

// resourceHandler обслуживает CRUD одной коллекции.
type resourceHandler[M, R any] struct {
	name   string
	repo   repo.Repository[M]
	apply  applyFunc[M, R]
	Logger *zap.SugaredLogger
}

func newResourceHandler[M, R any](name string, r repo.Repository[M], apply func(req R, m *M, creating bool) error, logger *zap.SugaredLogger) *resourceHandler[M, R] {
	return &resourceHandler[M, R]{name: name, repo: r, apply: apply, Logger: logger}
}

func (h *resourceHandler[M, R]) routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *resourceHandler[M, R]) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		h.fail(w, err, "list")
		return
	}
	jsonResponse(w, h.Logger, http.StatusOK, list)
}

func (h *resourceHandler[M, R]) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err, "get")
		return
	}
	jsonResponse(w, h.Logger, http.StatusOK, m)
}

func (h *resourceHandler[M, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req R
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Logger, http.StatusBadRequest, "invalid json")
		return
	}
	var m M
	if err := h.apply(req, &m, true); err != nil {
		jsonError(w, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(r.Context(), &m); err != nil {
		h.fail(w, err, "create")
		return
	}
	jsonResponse(w, h.Logger, http.StatusCreated, &m)
}

func (h *resourceHandler[M, R]) Update(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err, "update")
		return
	}
	var req R
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Logger, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.apply(req, m, false); err != nil {
		jsonError(w, h.Logger, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(r.Context(), m); err != nil {
		h.fail(w, err, "update")
		return
	}
	jsonResponse(w, h.Logger, http.StatusOK, m)
}

func (h *resourceHandler[M, R]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, err, "delete")
		return
	}
	jsonResponse(w, h.Logger, http.StatusNoContent, nil)
}

func (h *resourceHandler[M, R]) fail(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, repo.ErrNotFound) {
		jsonError(w, h.Logger, http.StatusNotFound, h.name+" not found")
		return
	}
	h.Logger.Errorw("repository call failed", "resource", h.name, "op", op, "error", err)
	jsonError(w, h.Logger, http.StatusInternalServerError, "internal error")
}
