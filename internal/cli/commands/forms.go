package commands

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/config"
)

type field struct{ name, value string }

// parseFields разбирает аргументы вида field=value.
func parseFields(args []string) ([]field, error) {
	out := make([]field, 0, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad argument %q: %w", a, ErrUsage)
		}
		out = append(out, field{name: k, value: v})
	}
	return out, nil
}

type fieldSetter interface {
	SetField(name, value string) error
}

func applyFields(f fieldSetter, fields []field) error {
	for _, fl := range fields {
		if err := f.SetField(fl.name, fl.value); err != nil {
			return err
		}
	}
	return nil
}

func lookup(fields []field, name string) (string, bool) {
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].name == name {
			return fields[i].value, true
		}
	}
	return "", false
}

// pickRef позволяет указать ссылку номером из списка вариантов.
func pickRef(opts []viewmodel.Option, value string) string {
	for _, o := range opts {
		if o.ID == value {
			return value
		}
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(opts) {
		return opts[n-1].ID
	}
	return value
}

// refField — поле-ссылка формы и его подсказка.
type refField struct {
	name  string
	kind  viewmodel.Kind
	title string
}

// resolveRefs подставляет идентификаторы вместо номеров и печатает варианты
// для незаполненных ссылок.
func resolveRefs(opts viewmodel.Options, fields []field, refs []refField) []field {
	for _, ref := range refs {
		choices := opts.Of(ref.kind)
		v, ok := lookup(fields, ref.name)
		if !ok || strings.TrimSpace(v) == "" {
			printOptions(ref.title, choices, opts.Failed[ref.kind])
			continue
		}
		for i := range fields {
			if fields[i].name == ref.name {
				fields[i].value = pickRef(choices, fields[i].value)
			}
		}
	}
	return fields
}

type clientAddCmd struct{}

func (clientAddCmd) Name() string { return "client-add" }
func (clientAddCmd) Description() string {
	return "Додати клієнта"
}
func (clientAddCmd) Usage() string {
	return "client-add surname=.. name=.. [patronymic=..] passport=.."
}

func (clientAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	fields, err := parseFields(args)
	if err != nil {
		return err
	}
	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()

	form := viewmodel.NewClientForm(s.api.Clients, s.term, s.logger)
	if err := applyFields(form, fields); err != nil {
		return err
	}
	return form.Submit(ctx)
}

type clientEditCmd struct{}

func (clientEditCmd) Name() string { return "client-edit" }
func (clientEditCmd) Description() string {
	return "Показати або змінити клієнта"
}
func (clientEditCmd) Usage() string { return "client-edit <id> [field=value ...]" }

func (clientEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 || strings.Contains(args[0], "=") {
		return ErrUsage
	}
	id := args[0]
	fields, err := parseFields(args[1:])
	if err != nil {
		return err
	}
	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()

	form := viewmodel.NewClientForm(s.api.Clients, s.term, s.logger)
	if err := form.Load(ctx, id); err != nil {
		return err
	}
	if len(fields) == 0 {
		printValues(form.Snapshot().Values)
		return nil
	}
	if err := applyFields(form, fields); err != nil {
		return err
	}
	return form.Submit(ctx)
}

func printValues(values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(Out, "%s=%s\n", k, values[k])
	}
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Додати предмет (owner — id або номер клієнта)"
}
func (itemAddCmd) Usage() string {
	return "item-add name=.. estimatedPrice=.. [loanAmount=..] [commission=..] owner=.."
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fields, err := parseFields(args)
	if err != nil {
		return err
	}
	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()

	opts := s.resolver().LoadOptions(ctx, viewmodel.KindClient)
	fields = resolveRefs(opts, fields, []refField{
		{name: "owner", kind: viewmodel.KindClient, title: "Оберіть клієнта"},
	})

	form := viewmodel.NewItemForm(s.api.Items, s.term, s.logger)
	if err := applyFields(form, fields); err != nil {
		return err
	}
	return form.Submit(ctx)
}

type dealAddCmd struct{}

func (dealAddCmd) Name() string { return "deal-add" }
func (dealAddCmd) Description() string {
	return "Оформити угоду (client, item — id або номер)"
}
func (dealAddCmd) Usage() string {
	return "deal-add client=.. item=.. loanAmount=.. [commission=..] [issueDate=YYYY-MM-DD] dueDate=YYYY-MM-DD"
}

func (dealAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fields, err := parseFields(args)
	if err != nil {
		return err
	}
	s, done, err := openSession(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer done()

	opts := s.resolver().LoadOptions(ctx, viewmodel.KindClient, viewmodel.KindItem)
	fields = resolveRefs(opts, fields, []refField{
		{name: "client", kind: viewmodel.KindClient, title: "Оберіть клієнта"},
		{name: "item", kind: viewmodel.KindItem, title: "Оберіть предмет"},
	})

	form := viewmodel.NewDealForm(s.api.Deals, s.term, s.logger, now())
	if err := applyFields(form, fields); err != nil {
		return err
	}
	return form.Submit(ctx)
}

func init() {
	RegisterCmd(clientAddCmd{})
	RegisterCmd(clientEditCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(dealAddCmd{})
}
