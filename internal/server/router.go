package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lglucin/didero-takehome/internal/catalog"
	ordercontroller "github.com/lglucin/didero-takehome/internal/order/controller"
)

func NewRouter(orderCtrl *ordercontroller.OrderController, catalogCtrl *catalog.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderCtrl.HandleList)
		r.Post("/", orderCtrl.HandleCreate)
		r.Get("/{id}", orderCtrl.HandleGet)
		r.Patch("/{id}", orderCtrl.HandlePatch)
		r.Delete("/{id}", orderCtrl.HandleDelete)
	})

	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", catalogCtrl.HandleListSuppliers)
		r.Get("/{id}/items", catalogCtrl.HandleListSupplierItems)
	})

	return r
}
