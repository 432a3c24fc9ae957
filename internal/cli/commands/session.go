package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"Lombard/internal/cli/api"
	"Lombard/internal/cli/bootstrap"
	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/config"

	"go.uber.org/zap"
)

// terminal — хост экранов в консоли: подтверждение через In, уведомления и
// переходы через Out.
type terminal struct {
	in        *bufio.Reader
	assumeYes bool
	show      func(route string)
}

func (t *terminal) Confirm(prompt string) bool {
	if t.assumeYes {
		return true
	}
	fmt.Fprintf(Out, "%s [y/N]: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "т", "так":
		return true
	}
	return false
}

func (t *terminal) Notify(message string) {
	fmt.Fprintln(Out, message)
}

// Navigate рисует экран списка, на который ведёт маршрут.
func (t *terminal) Navigate(route string) {
	if t.show != nil {
		t.show(route)
	}
}

// session связывает API-клиент, логгер и терминал на время одной команды.
type session struct {
	api    *api.Client
	logger *zap.SugaredLogger
	term   *terminal
}

func openSession(ctx context.Context, cfg *config.Config, assumeYes bool) (*session, func(), error) {
	client, logger, cleanup, err := bootstrap.OpenAPI(cfg)
	if err != nil {
		return nil, nil, err
	}
	s := &session{api: client, logger: logger}
	s.term = &terminal{
		in:        bufio.NewReader(In),
		assumeYes: assumeYes,
		show: func(route string) {
			if err := s.show(ctx, route); err != nil {
				fmt.Fprintln(Out, viewmodel.Message(err))
			}
		},
	}
	return s, cleanup, nil
}

func (s *session) show(ctx context.Context, route string) error {
	switch route {
	case viewmodel.RouteClients:
		return showList(ctx, viewmodel.NewClientList(s.api.Clients, s.term, s.logger), clientColumns)
	case viewmodel.RouteItems:
		return showList(ctx, viewmodel.NewItemList(s.api.Items, s.term, s.logger), itemColumns)
	case viewmodel.RouteDeals:
		return showList(ctx, viewmodel.NewDealList(s.api.Deals, s.term, s.logger), dealColumns)
	}
	return fmt.Errorf("unknown route %q", route)
}

func (s *session) resolver() *viewmodel.ReferenceResolver {
	return viewmodel.NewReferenceResolver(s.api.Clients, s.api.Items, s.logger)
}
