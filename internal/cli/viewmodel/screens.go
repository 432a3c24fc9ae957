package viewmodel

import (
	"time"

	"Lombard/internal/cli/model"

	"go.uber.org/zap"
)

type (
	ClientList = ListViewModel[model.Client]
	ItemList   = ListViewModel[model.Item]
	DealList   = ListViewModel[model.Deal]

	ClientForm = FormViewModel[model.Client, model.ClientPayload]
	ItemForm   = FormViewModel[model.Item, model.ItemPayload]
	DealForm   = FormViewModel[model.Deal, model.DealPayload]
)

func NewClientList(src ListSource[model.Client], host Host, logger *zap.SugaredLogger) *ClientList {
	return NewListViewModel(src, host, logger, ListMessages{
		LoadFailed:    "Помилка завантаження клієнтів",
		ConfirmDelete: "Видалити клієнта?",
	})
}

func NewItemList(src ListSource[model.Item], host Host, logger *zap.SugaredLogger) *ItemList {
	return NewListViewModel(src, host, logger, ListMessages{
		LoadFailed:    "Помилка завантаження предметів",
		ConfirmDelete: "Видалити предмет?",
	})
}

func NewDealList(src ListSource[model.Deal], host Host, logger *zap.SugaredLogger) *DealList {
	return NewListViewModel(src, host, logger, ListMessages{
		LoadFailed:    "Помилка завантаження угод",
		ConfirmDelete: "Видалити угоду?",
	})
}

func NewClientForm(store FormStore[model.Client, model.ClientPayload], nav Navigator, logger *zap.SugaredLogger) *ClientForm {
	return NewFormViewModel[model.Client, model.ClientPayload](store, &ClientDraft{}, nav, logger, FormMessages{
		LoadFailed:   "Помилка завантаження клієнта",
		CreateFailed: "Помилка створення клієнта",
		UpdateFailed: "Помилка збереження клієнта",
		ListRoute:    RouteClients,
	})
}

func NewItemForm(store FormStore[model.Item, model.ItemPayload], nav Navigator, logger *zap.SugaredLogger) *ItemForm {
	return NewFormViewModel[model.Item, model.ItemPayload](store, &ItemDraft{}, nav, logger, FormMessages{
		LoadFailed:   "Помилка завантаження предмета",
		CreateFailed: "Помилка створення предмета",
		UpdateFailed: "Помилка збереження предмета",
		ListRoute:    RouteItems,
	})
}

// NewDealForm creates a deal form whose issue date defaults to now.
func NewDealForm(store FormStore[model.Deal, model.DealPayload], nav Navigator, logger *zap.SugaredLogger, now time.Time) *DealForm {
	return NewFormViewModel[model.Deal, model.DealPayload](store, NewDealDraft(now), nav, logger, FormMessages{
		LoadFailed:   "Помилка завантаження угоди",
		CreateFailed: "Помилка створення угоди",
		UpdateFailed: "Помилка збереження угоди",
		ListRoute:    RouteDeals,
	})
}
