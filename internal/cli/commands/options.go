package commands

import (
	"context"

	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/config"
)

var optionTitles = map[viewmodel.Kind]string{
	viewmodel.KindClient: "Оберіть клієнта",
	viewmodel.KindItem:   "Оберіть предмет",
}

type optionsCmd struct{}

func (optionsCmd) Name() string { return "options" }
func (optionsCmd) Description() string {
	return "Показати варіанти вибору клієнтів і предметів"
}
func (optionsCmd) Usage() string { return "options [client] [item]" }

func (optionsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	kinds := make([]viewmodel.Kind, 0, len(args))
	for _, a := range args {
		k := viewmodel.Kind(a)
		if _, ok := optionTitles[k]; !ok {
			return ErrUsage
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		kinds = []viewmodel.Kind{viewmodel.KindClient, viewmodel.KindItem}
	}

	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()

	opts := s.resolver().LoadOptions(ctx, kinds...)
	seen := map[viewmodel.Kind]bool{}
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		printOptions(optionTitles[k], opts.Of(k), opts.Failed[k])
	}
	return nil
}

func init() { RegisterCmd(optionsCmd{}) }
