package commands

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"Lombard/internal/cli/viewmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClients_EmptyList(t *testing.T) {
	cfg := newLiveServer(t)
	out, code := run(t, cfg, "clients")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Завантаження...")
	assert.Contains(t, out, "Немає клієнтів. Додайте першого!")
}

func TestClients_LoadFailure(t *testing.T) {
	cfg := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
	})
	out, code := run(t, cfg, "clients")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Помилка завантаження клієнтів")
}

func TestListCommands_Usage(t *testing.T) {
	cfg := newLiveServer(t)
	_, code := run(t, cfg, "items", "extra")
	assert.Equal(t, 2, code)
}

func TestClientAdd_NavigatesToList(t *testing.T) {
	cfg := newLiveServer(t)
	out, code := run(t, cfg, "client-add", "surname=Іванов", "name=Петро", "patronymic=", "passport=AA123456")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Іванов")
	assert.Contains(t, out, "AA123456")
	assert.Contains(t, out, "Всього: 1")

	list := listClients(t, cfg)
	require.Len(t, list, 1)
	assert.Equal(t, "Петро", list[0].Name)
	assert.Empty(t, list[0].Patronymic)
}

func TestClientAdd_MissingPassportNeverSent(t *testing.T) {
	cfg := newLiveServer(t)
	out, code := run(t, cfg, "client-add", "surname=Іванов", "name=Петро")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, viewmodel.MsgRequired)
	assert.Empty(t, listClients(t, cfg))
}

func TestClientAdd_UsageAndUnknownField(t *testing.T) {
	cfg := newLiveServer(t)
	_, code := run(t, cfg, "client-add")
	assert.Equal(t, 2, code)
	_, code = run(t, cfg, "client-add", "surname")
	assert.Equal(t, 2, code)

	err := clientAddCmd{}.Run(context.Background(), cfg, []string{"age=40"})
	assert.ErrorIs(t, err, viewmodel.ErrUnknownField)
}

func TestClientAdd_SaveFailure(t *testing.T) {
	cfg := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	out, code := run(t, cfg, "client-add", "surname=Іванов", "name=Петро", "passport=AA123456")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Помилка створення клієнта")
}

func TestClientEdit_ShowAndUpdate(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	out, code := run(t, cfg, "client-edit", c.ID)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "passport=AA123456")
	assert.Contains(t, out, "surname=Іванов")

	out, code = run(t, cfg, "client-edit", c.ID, "patronymic=Іванович")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Іванович")
	assert.Equal(t, "Іванович", listClients(t, cfg)[0].Patronymic)
}

func TestClientEdit_UnknownIDAndUsage(t *testing.T) {
	cfg := newLiveServer(t)
	out, code := run(t, cfg, "client-edit", "missing-id")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Помилка завантаження клієнта")

	_, code = run(t, cfg, "client-edit")
	assert.Equal(t, 2, code)
	_, code = run(t, cfg, "client-edit", "name=x")
	assert.Equal(t, 2, code)
}

func TestItemAdd_OwnerByNumber(t *testing.T) {
	cfg := newLiveServer(t)
	addClient(t, cfg)

	out, code := run(t, cfg, "item-add", "name=Каблучка", "estimatedPrice=1500", "owner=1")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Каблучка")
	assert.Contains(t, out, "1500 грн")
	assert.Contains(t, out, "Іванов Петро")
	assert.Contains(t, out, "Під заставою")
}

func TestItemAdd_MissingOwnerShowsChoices(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	out, code := run(t, cfg, "item-add", "name=Каблучка", "estimatedPrice=1500")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Оберіть клієнта:")
	assert.Contains(t, out, "1) "+c.ID+"  Іванов Петро")
	assert.Contains(t, out, viewmodel.MsgRequired)
}

func TestItemAdd_BadPrice(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	out, code := run(t, cfg, "item-add", "name=Каблучка", "estimatedPrice=abc", "owner="+c.ID)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Некоректне значення поля «Оціночна вартість»")
}

func TestDealAdd_StatusLabels(t *testing.T) {
	cfg := newLiveServer(t)
	withNow(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	addClient(t, cfg)
	_, code := run(t, cfg, "item-add", "name=Ноутбук", "estimatedPrice=20000", "owner=1")
	require.Equal(t, 0, code)

	out, code := run(t, cfg, "deal-add", "client=1", "item=1", "loanAmount=800", "issueDate=2024-05-01", "dueDate=2024-05-15")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Прострочено")
	assert.Contains(t, out, "01.05.2024")
	assert.Contains(t, out, "15.05.2024")
	assert.Contains(t, out, "800 грн")
	assert.Contains(t, out, "Ноутбук")

	out, code = run(t, cfg, "deal-add", "client=1", "item=1", "loanAmount=500", "dueDate=2024-07-01")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Активна")
	// дата выдачи по умолчанию — сегодня
	assert.Contains(t, out, "01.06.2024")
	assert.Contains(t, out, "Всього: 2")
}

func TestDealAdd_MissingRefsShowChoices(t *testing.T) {
	cfg := newLiveServer(t)
	out, code := run(t, cfg, "deal-add", "loanAmount=100", "dueDate=2024-07-01")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Оберіть клієнта:")
	assert.Contains(t, out, "Оберіть предмет:")
	assert.Contains(t, out, "(порожньо)")
	assert.Contains(t, out, viewmodel.MsgRequired)
}

func TestRemove_ConfirmFlow(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	withStdin(t, "n\n")
	out, code := run(t, cfg, "client-rm", c.ID)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Видалити клієнта? [y/N]: ")
	assert.Contains(t, out, "Скасовано")
	assert.Len(t, listClients(t, cfg), 1)

	withStdin(t, "так\n")
	out, code = run(t, cfg, "client-rm", c.ID)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Немає клієнтів. Додайте першого!")
	assert.Empty(t, listClients(t, cfg))
}

func TestRemove_EOFDeclines(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	withStdin(t, "")
	out, code := run(t, cfg, "client-rm", c.ID)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Скасовано")
}

func TestRemove_YesFlagAndUsage(t *testing.T) {
	cfg := newLiveServer(t)
	c := addClient(t, cfg)

	out, code := run(t, cfg, "client-rm", "-y", c.ID)
	assert.Equal(t, 0, code, out)
	assert.NotContains(t, out, "[y/N]")
	assert.Empty(t, listClients(t, cfg))

	_, code = run(t, cfg, "client-rm")
	assert.Equal(t, 2, code)
	_, code = run(t, cfg, "deal-rm", "a", "b")
	assert.Equal(t, 2, code)
	_, code = run(t, cfg, "item-rm", "-z", "a")
	assert.Equal(t, 2, code)
}

func TestRemove_FailureNotifies(t *testing.T) {
	cfg := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	out, code := run(t, cfg, "item-rm", "-y", "x1")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, viewmodel.MsgDeleteFailed)
}

func TestOptions_ListsChoices(t *testing.T) {
	cfg := newLiveServer(t)
	addClient(t, cfg)
	_, code := run(t, cfg, "item-add", "name=Каблучка", "estimatedPrice=1500", "owner=1")
	require.Equal(t, 0, code)

	out, code := run(t, cfg, "options")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Оберіть клієнта:")
	assert.Contains(t, out, "Іванов Петро")
	assert.Contains(t, out, "Оберіть предмет:")
	assert.Contains(t, out, "Каблучка - 1500 грн")

	_, code = run(t, cfg, "options", "deal")
	assert.Equal(t, 2, code)
}

func TestOptions_FailureIsolated(t *testing.T) {
	cfg := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/items" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"_id":"c1","surname":"Іванов","name":"Петро","patronymic":"Іванович","passport":"AA1"}]`))
	})
	out, code := run(t, cfg, "options", "client", "item", "client")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "1) c1  Іванов Петро Іванович")
	assert.Contains(t, out, "не вдалося завантажити")
}

func TestPickRef(t *testing.T) {
	opts := []viewmodel.Option{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}
	assert.Equal(t, "b", pickRef(opts, "b"))
	assert.Equal(t, "b", pickRef(opts, "2"))
	assert.Equal(t, "3", pickRef(opts, "3"))
	assert.Equal(t, "zzz", pickRef(opts, "zzz"))
}

func TestParseFields(t *testing.T) {
	f, err := parseFields([]string{"a=1", "b=x=y", "c="})
	require.NoError(t, err)
	assert.Equal(t, []field{{"a", "1"}, {"b", "x=y"}, {"c", ""}}, f)

	_, err = parseFields([]string{"=1"})
	assert.True(t, errors.Is(err, ErrUsage))
}
