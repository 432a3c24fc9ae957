package api

import (
	"context"
	"net/http"
	"net/url"
)

// Resource — типизированная обёртка над одним REST-ресурсом.
// T — модель чтения, P — тело запроса на запись.
type Resource[T, P any] struct {
	c    *Client
	path string
}

func (r Resource[T, P]) collection() string { return r.c.baseURL + r.path }

func (r Resource[T, P]) member(id string) string {
	return r.c.baseURL + r.path + "/" + url.PathEscape(id)
}

// List returns the whole collection.
func (r Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.doJSON(ctx, "list", http.MethodGet, r.collection(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Get returns a single record by id.
func (r Resource[T, P]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.c.doJSON(ctx, "get", http.MethodGet, r.member(id), nil, &out)
	return out, err
}

// Create posts a new record and returns what the server stored.
func (r Resource[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var out T
	err := r.c.doJSON(ctx, "create", http.MethodPost, r.collection(), payload, &out)
	return out, err
}

// Update replaces the record with the given id.
func (r Resource[T, P]) Update(ctx context.Context, id string, payload P) (T, error) {
	var out T
	err := r.c.doJSON(ctx, "update", http.MethodPut, r.member(id), payload, &out)
	return out, err
}

// Remove deletes the record with the given id.
func (r Resource[T, P]) Remove(ctx context.Context, id string) error {
	return r.c.doJSON(ctx, "remove", http.MethodDelete, r.member(id), nil, nil)
}
