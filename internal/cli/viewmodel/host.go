package viewmodel

import "context"

// Host is the UI capability a screen needs: a yes/no confirmation and a
// one-line notification.
type Host interface {
	Confirm(prompt string) bool
	Notify(message string)
}

// Navigator receives the route to go to after a successful submission.
type Navigator interface {
	Navigate(route string)
}

// Routes of the list screens.
const (
	RouteClients = "/clients"
	RouteItems   = "/items"
	RouteDeals   = "/deals"
)

// Lister lists one kind of entity.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ListSource is what a list screen needs from the API.
type ListSource[T any] interface {
	Lister[T]
	Remove(ctx context.Context, id string) error
}

// FormStore is what a form screen needs from the API.
type FormStore[T, P any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id string, payload P) (T, error)
}
