package catalog

import (
	"context"
	"sync"

	"github.com/lglucin/didero-takehome/internal/domain"
)

// InMemoryRepository serves the supplier and item catalogs from process
// memory. The workflow treats catalog rows as opaque snapshots to embed
// in orders; nothing here is re-resolved after an order is built.
type InMemoryRepository struct {
	mu        sync.RWMutex
	suppliers []domain.Supplier
	items     []domain.Item
}

func NewInMemoryRepository(suppliers []domain.Supplier, items []domain.Item) *InMemoryRepository {
	return &InMemoryRepository{
		suppliers: suppliers,
		items:     items,
	}
}

// NewSeededRepository returns a catalog pre-loaded with demo data so the
// order-entry workflow has suppliers and items to select from.
func NewSeededRepository() *InMemoryRepository {
	suppliers := []domain.Supplier{
		{ID: 1, Name: "Acme Industrial Supply"},
		{ID: 2, Name: "Globex Components"},
		{ID: 3, Name: "Initech Office Wholesale"},
	}
	items := []domain.Item{
		{ID: 10, SupplierID: 1, ItemName: "M8 Hex Bolt (box of 100)", Price: 12.50, PriceCurrency: "USD"},
		{ID: 11, SupplierID: 1, ItemName: "Steel Angle Bracket", Price: 4.75, PriceCurrency: "USD"},
		{ID: 12, SupplierID: 2, ItemName: "12V DC Motor", Price: 38.00, PriceCurrency: "USD"},
		{ID: 13, SupplierID: 2, ItemName: "Limit Switch", Price: 9.20, PriceCurrency: "USD"},
		{ID: 14, SupplierID: 3, ItemName: "A4 Copy Paper (pallet)", Price: 210.00, PriceCurrency: "USD"},
	}
	return NewInMemoryRepository(suppliers, items)
}

func (r *InMemoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]domain.Supplier, len(r.suppliers))
	copy(suppliers, r.suppliers)
	return suppliers, nil
}

// ListItemsBySupplier returns the supplier's items. An unknown supplier
// id yields an empty list, not an error; the workflow renders that as
// "no items available".
func (r *InMemoryRepository) ListItemsBySupplier(ctx context.Context, supplierID int64) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0)
	for _, item := range r.items {
		if item.SupplierID == supplierID {
			items = append(items, item)
		}
	}
	return items, nil
}
