package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
)

// InMemoryOrderRepository is the canonical purchase-order store. State
// lives only in process memory; a durable backend would implement the
// same contract behind the controller's OrderRepository port.
//
// One RWMutex guards the whole collection: reads interleave freely and
// never observe a half-applied write, writes to any id are serialized.
// Aggregates are cloned on the way in and out so callers cannot mutate
// stored state behind the lock.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.PurchaseOrder
	ids    []int64
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[int64]*domain.PurchaseOrder),
	}
}

func (r *InMemoryOrderRepository) FindByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return order.Clone(), nil
}

// ListAll returns a snapshot of the collection in insertion order.
func (r *InMemoryOrderRepository) ListAll(ctx context.Context) ([]*domain.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*domain.PurchaseOrder, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, r.orders[id].Clone())
	}

	return orders, nil
}

func (r *InMemoryOrderRepository) Insert(ctx context.Context, order *domain.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return errors.NewDuplicateIDError(fmt.Sprintf("order with id %d already exists", order.ID))
	}

	r.orders[order.ID] = order.Clone()
	r.ids = append(r.ids, order.ID)
	return nil
}

// MergePatch replaces only the fields present in patch on the stored
// aggregate and returns the fully merged result. The merge is shallow:
// a patched items sequence replaces the previous one wholesale.
func (r *InMemoryOrderRepository) MergePatch(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	merged := order.Clone()
	patch.Apply(merged)
	r.orders[id] = merged

	return merged.Clone(), nil
}

// Remove deletes the aggregate and returns it. Deletion is permanent;
// a repeated remove of the same id reports not-found.
func (r *InMemoryOrderRepository) Remove(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	delete(r.orders, id)
	for i, storedID := range r.ids {
		if storedID == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}

	return order, nil
}
