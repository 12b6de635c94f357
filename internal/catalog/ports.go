package catalog

import (
	"context"

	"github.com/lglucin/didero-takehome/internal/domain"
)

type Repository interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	ListItemsBySupplier(ctx context.Context, supplierID int64) ([]domain.Item, error)
}
