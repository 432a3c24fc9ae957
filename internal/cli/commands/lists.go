package commands

import (
	"context"

	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/config"
)

// listCmd показывает один из списков: клиенты, предметы или угоды.
type listCmd struct {
	name, desc, route string
}

func (c listCmd) Name() string        { return c.name }
func (c listCmd) Description() string { return c.desc }
func (c listCmd) Usage() string       { return c.name }

func (c listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()
	return s.show(ctx, c.route)
}

func init() {
	RegisterCmd(listCmd{name: "clients", desc: "Показати список клієнтів", route: viewmodel.RouteClients})
	RegisterCmd(listCmd{name: "items", desc: "Показати список предметів", route: viewmodel.RouteItems})
	RegisterCmd(listCmd{name: "deals", desc: "Показати список угод", route: viewmodel.RouteDeals})
}
