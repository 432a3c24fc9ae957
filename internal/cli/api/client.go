package api

import (
	"net/http"
	"strings"

	"Lombard/internal/cli/model"

	"go.uber.org/zap"
)

// Client — клиент REST API ломбарда. Базовый адрес передаётся явно при создании.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.SugaredLogger

	Clients Resource[model.Client, model.ClientPayload]
	Items   Resource[model.Item, model.ItemPayload]
	Deals   Resource[model.Deal, model.DealPayload]
}

// New builds an API client for baseURL (scheme://host:port). A nil httpClient
// means http.DefaultClient, a nil logger means no logging.
func New(baseURL string, httpClient *http.Client, logger *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
	c.Clients = Resource[model.Client, model.ClientPayload]{c: c, path: "/api/clients"}
	c.Items = Resource[model.Item, model.ItemPayload]{c: c, path: "/api/items"}
	c.Deals = Resource[model.Deal, model.DealPayload]{c: c, path: "/api/deals"}
	return c
}
