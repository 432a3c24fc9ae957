package handlers

import (
	"Lombard/internal/middleware"
	"Lombard/internal/model"
	"Lombard/internal/repo"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	clients repo.Repository[model.Client],
	items repo.Repository[model.Item],
	deals repo.Repository[model.Deal],
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithRecover)
	r.Use(middleware.WithLogging)

	clientHandler := newResourceHandler("client", clients, applyClient, logger)
	itemHandler := newResourceHandler("item", items, applyItem, logger)
	dealHandler := newResourceHandler("deal", deals, applyDeal, logger)

	r.Route("/api/clients", clientHandler.routes)
	r.Route("/api/items", itemHandler.routes)
	r.Route("/api/deals", dealHandler.routes)

	return &Handler{Router: r}
}
