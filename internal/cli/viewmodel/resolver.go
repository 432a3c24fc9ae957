package viewmodel

import (
	"context"
	"sync"

	"Lombard/internal/cli/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Kind names an entity that other forms reference.
type Kind string

const (
	KindClient Kind = "client"
	KindItem   Kind = "item"
)

// Option is one selectable reference.
type Option struct {
	ID    string
	Label string
}

// Options maps each requested kind to its choices. Failed records the kinds
// whose list call failed; those kinds have no choices.
type Options struct {
	Choices map[Kind][]Option
	Failed  map[Kind]error
}

// Of returns the choices of kind, never nil.
func (o Options) Of(kind Kind) []Option {
	if opts := o.Choices[kind]; opts != nil {
		return opts
	}
	return []Option{}
}

type optionLoader func(ctx context.Context) ([]Option, error)

// ReferenceResolver loads selectable options for reference fields.
type ReferenceResolver struct {
	loaders map[Kind]optionLoader
	logger  *zap.SugaredLogger
}

// NewReferenceResolver builds a resolver over the client and item lists.
func NewReferenceResolver(clients Lister[model.Client], items Lister[model.Item], logger *zap.SugaredLogger) *ReferenceResolver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ReferenceResolver{
		logger: logger,
		loaders: map[Kind]optionLoader{
			KindClient: func(ctx context.Context) ([]Option, error) {
				list, err := clients.List(ctx)
				if err != nil {
					return nil, err
				}
				opts := make([]Option, 0, len(list))
				for _, c := range list {
					opts = append(opts, Option{ID: c.ID, Label: c.FullName()})
				}
				return opts, nil
			},
			KindItem: func(ctx context.Context) ([]Option, error) {
				list, err := items.List(ctx)
				if err != nil {
					return nil, err
				}
				opts := make([]Option, 0, len(list))
				for _, it := range list {
					opts = append(opts, Option{ID: it.ID, Label: it.Name + " - " + model.Hryvnias(it.EstimatedPrice)})
				}
				return opts, nil
			},
		},
	}
}

// LoadOptions issues one list call per kind concurrently and waits for all of
// them. A failing kind degrades to an empty option list; the others are unaffected.
func (r *ReferenceResolver) LoadOptions(ctx context.Context, kinds ...Kind) Options {
	res := Options{Choices: make(map[Kind][]Option, len(kinds)), Failed: map[Kind]error{}}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	pending := make([]Kind, 0, len(kinds))
	for _, kind := range kinds {
		if _, dup := res.Choices[kind]; dup {
			continue
		}
		res.Choices[kind] = []Option{}
		if _, ok := r.loaders[kind]; !ok {
			res.Failed[kind] = ErrUnknownKind
			continue
		}
		pending = append(pending, kind)
	}
	for _, kind := range pending {
		load := r.loaders[kind]
		g.Go(func() error {
			opts, err := load(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.Warnw("reference options load failed", "kind", kind, "error", err)
				res.Failed[kind] = err
				return nil
			}
			res.Choices[kind] = opts
			return nil
		})
	}
	_ = g.Wait()
	return res
}
