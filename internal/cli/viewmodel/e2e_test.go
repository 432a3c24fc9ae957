package viewmodel_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"Lombard/internal/cli/api"
	"Lombard/internal/cli/model"
	"Lombard/internal/cli/viewmodel"
	"Lombard/internal/handlers"
	"Lombard/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu     sync.Mutex
	routes []string
	notes  []string
	answer bool
}

func (r *recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}
func (r *recorder) Confirm(string) bool { return r.answer }
func (r *recorder) Notify(m string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, m)
}

func newAPI(t *testing.T) *api.Client {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	h := handlers.NewHandler(repo.NewClientRepository(db), repo.NewItemRepository(db), repo.NewDealRepository(db), zap.NewNop().Sugar())
	ts := httptest.NewServer(h.Router)
	t.Cleanup(func() {
		ts.Close()
		_ = sqlDB.Close()
	})
	return api.New(ts.URL, ts.Client(), nil)
}

func TestEndToEnd_ClientCreateNavigatesAndLists(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)
	rec := &recorder{answer: true}

	form := viewmodel.NewClientForm(c.Clients, rec, nil)
	for k, v := range map[string]string{"surname": "Іванов", "name": "Петро", "patronymic": "", "passport": "AA123456"} {
		require.NoError(t, form.SetField(k, v))
	}
	require.NoError(t, form.Submit(ctx))
	assert.Equal(t, []string{viewmodel.RouteClients}, rec.routes)
	assert.Equal(t, viewmodel.FormDone, form.Snapshot().State)

	list := viewmodel.NewClientList(c.Clients, rec, nil)
	require.NoError(t, list.Refresh(ctx))
	snap := list.Snapshot()
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "Іванов Петро", snap.Rows[0].FullName())
	assert.NotEmpty(t, snap.Rows[0].ID)
}

func TestEndToEnd_DealFlowWithResolvedReferences(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)
	rec := &recorder{answer: true}

	owner, err := c.Clients.Create(ctx, model.ClientPayload{Surname: "Шевченко", Name: "Тарас", Passport: "КВ000001"})
	require.NoError(t, err)

	itemForm := viewmodel.NewItemForm(c.Items, rec, nil)
	res := viewmodel.NewReferenceResolver(c.Clients, c.Items, nil)
	opts := res.LoadOptions(ctx, viewmodel.KindClient)
	require.Len(t, opts.Of(viewmodel.KindClient), 1)
	assert.Equal(t, "Шевченко Тарас", opts.Of(viewmodel.KindClient)[0].Label)

	require.NoError(t, itemForm.SetField("name", "Годинник"))
	require.NoError(t, itemForm.SetField("estimatedPrice", "2500"))
	require.NoError(t, itemForm.SetField("owner", opts.Of(viewmodel.KindClient)[0].ID))
	require.NoError(t, itemForm.Submit(ctx))
	item := itemForm.Snapshot().Saved
	assert.Equal(t, model.ItemStatusPledged, item.Status)
	require.NotNil(t, item.Owner)
	assert.Equal(t, owner.ID, item.Owner.ID)

	opts = res.LoadOptions(ctx, viewmodel.KindClient, viewmodel.KindItem)
	assert.Empty(t, opts.Failed)
	assert.Equal(t, "Годинник - 2500 грн", opts.Of(viewmodel.KindItem)[0].Label)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	dealForm := viewmodel.NewDealForm(c.Deals, rec, nil, day)
	require.NoError(t, dealForm.SetField("client", owner.ID))
	require.NoError(t, dealForm.SetField("item", item.ID))
	require.NoError(t, dealForm.SetField("loanAmount", "1200"))
	require.NoError(t, dealForm.SetField("dueDate", "2024-04-10"))
	require.NoError(t, dealForm.Submit(ctx))
	assert.Equal(t, []string{viewmodel.RouteItems, viewmodel.RouteDeals}, rec.routes)

	deals := viewmodel.NewDealList(c.Deals, rec, nil)
	require.NoError(t, deals.Refresh(ctx))
	rows := deals.Snapshot().Rows
	require.Len(t, rows, 1)
	d := rows[0]
	assert.Equal(t, "10.03.2024", d.IssueDate.Display())
	assert.Equal(t, model.DealOverdue, d.Status(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, model.DealActive, d.Status(day))
	assert.Equal(t, "Шевченко Тарас", model.ClientName(d.Client))
	assert.Equal(t, "Годинник", model.ItemName(d.Item))

	// клиент удалён: ссылки в предметах и угодах становятся "-"
	clients := viewmodel.NewClientList(c.Clients, rec, nil)
	removed, err := clients.Remove(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	items := viewmodel.NewItemList(c.Items, rec, nil)
	require.NoError(t, items.Refresh(ctx))
	assert.Equal(t, model.Missing, model.ClientName(items.Snapshot().Rows[0].Owner))
	require.NoError(t, deals.Refresh(ctx))
	assert.Equal(t, model.Missing, model.ClientName(deals.Snapshot().Rows[0].Client))
}

func TestEndToEnd_DeleteUnknownNotifies(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)
	rec := &recorder{answer: true}

	list := viewmodel.NewDealList(c.Deals, rec, nil)
	removed, err := list.Remove(ctx, "missing")
	assert.False(t, removed)
	var de *viewmodel.DeleteError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{viewmodel.MsgDeleteFailed}, rec.notes)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
}
