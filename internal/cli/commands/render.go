package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"Lombard/internal/cli/model"
	"Lombard/internal/cli/viewmodel"
)

// now подменяется в тестах статуса угод.
var now = time.Now

// columns описывает таблицу одного списка.
type columns[T any] struct {
	empty  string
	header []string
	row    func(T) []string
}

var clientColumns = columns[model.Client]{
	empty:  "Немає клієнтів. Додайте першого!",
	header: []string{"ID", "Прізвище", "Ім'я", "По батькові", "Паспорт"},
	row: func(c model.Client) []string {
		return []string{c.ID, c.Surname, c.Name, orMissing(c.Patronymic), c.Passport}
	},
}

var itemColumns = columns[model.Item]{
	empty:  "Немає предметів. Додайте перший!",
	header: []string{"ID", "Назва", "Оціночна вартість", "Сума позики", "Комісія", "Власник", "Статус"},
	row: func(it model.Item) []string {
		return []string{
			it.ID, it.Name,
			model.Hryvnias(it.EstimatedPrice), model.Hryvnias(it.LoanAmount), model.Hryvnias(it.Commission),
			model.ClientName(it.Owner), it.StatusLabel(),
		}
	},
}

var dealColumns = columns[model.Deal]{
	empty:  "Немає угод. Додайте першу!",
	header: []string{"ID", "Клієнт", "Предмет", "Сума позики", "Комісія", "Дата видачі", "Термін повернення", "Статус"},
	row: func(d model.Deal) []string {
		return []string{
			d.ID, model.ClientName(d.Client), model.ItemName(d.Item),
			model.Hryvnias(d.LoanAmount), model.Hryvnias(d.Commission),
			d.IssueDate.Display(), d.DueDate.Display(), d.Status(now()).Label(),
		}
	},
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return model.Missing
	}
	return s
}

// showList загружает список и печатает его таблицей.
func showList[T any](ctx context.Context, vm *viewmodel.ListViewModel[T], cols columns[T]) error {
	fmt.Fprintln(Out, "Завантаження...")
	if err := vm.Refresh(ctx); err != nil {
		return err
	}
	printRows(vm.Snapshot().Rows, cols)
	return nil
}

func printRows[T any](rows []T, cols columns[T]) {
	if len(rows) == 0 {
		fmt.Fprintln(Out, cols.empty)
		return
	}
	tw := tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols.header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(cols.row(r), "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintf(Out, "Всього: %d\n", len(rows))
}

// printOptions печатает варианты выбора с порядковыми номерами.
func printOptions(title string, opts []viewmodel.Option, failed error) {
	fmt.Fprintln(Out, title+":")
	if failed != nil {
		fmt.Fprintf(Out, "  (не вдалося завантажити: %v)\n", failed)
		return
	}
	if len(opts) == 0 {
		fmt.Fprintln(Out, "  (порожньо)")
		return
	}
	for i, o := range opts {
		fmt.Fprintf(Out, "  %d) %s  %s\n", i+1, o.ID, o.Label)
	}
}
