package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/config"
)

// rmCmd удаляет запись после подтверждения (или сразу с -y).
type rmCmd struct {
	name, desc, route string
}

func (c rmCmd) Name() string        { return c.name }
func (c rmCmd) Description() string { return c.desc }
func (c rmCmd) Usage() string       { return c.name + " [-y] <id>" }

func (c rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("y", false, "не спрашивать подтверждение")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 {
		return ErrUsage
	}
	id := fs.Arg(0)

	s, done, err := openSession(ctx, cfg, *yes)
	if err != nil {
		return err
	}
	defer done()

	switch c.route {
	case viewmodel.RouteClients:
		return removeRow(ctx, viewmodel.NewClientList(s.api.Clients, s.term, s.logger), id, clientColumns)
	case viewmodel.RouteItems:
		return removeRow(ctx, viewmodel.NewItemList(s.api.Items, s.term, s.logger), id, itemColumns)
	case viewmodel.RouteDeals:
		return removeRow(ctx, viewmodel.NewDealList(s.api.Deals, s.term, s.logger), id, dealColumns)
	}
	return fmt.Errorf("unknown route %q", c.route)
}

// removeRow удаляет запись и печатает обновлённый список.
func removeRow[T any](ctx context.Context, vm *viewmodel.ListViewModel[T], id string, cols columns[T]) error {
	removed, err := vm.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Fprintln(Out, "Скасовано")
		return nil
	}
	printRows(vm.Snapshot().Rows, cols)
	return nil
}

func init() {
	RegisterCmd(rmCmd{name: "client-rm", desc: "Видалити клієнта", route: viewmodel.RouteClients})
	RegisterCmd(rmCmd{name: "item-rm", desc: "Видалити предмет", route: viewmodel.RouteItems})
	RegisterCmd(rmCmd{name: "deal-rm", desc: "Видалити угоду", route: viewmodel.RouteDeals})
}
