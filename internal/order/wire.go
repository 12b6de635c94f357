package order

import (
	"go.uber.org/zap"

	"github.com/lglucin/didero-takehome/internal/order/controller"
	"github.com/lglucin/didero-takehome/internal/order/repository"
	"github.com/lglucin/didero-takehome/internal/order/service"
)

// NewModule wires the order module with its own isolated store. Tests
// construct the same pieces directly when they need to reach into the
// repository.
func NewModule(logger *zap.Logger) *controller.OrderController {
	repo := repository.NewInMemoryOrderRepository()
	policy := service.NewLifecyclePolicy()
	return controller.NewOrderController(repo, policy, logger)
}
