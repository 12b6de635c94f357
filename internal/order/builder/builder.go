package builder

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
)

// BuildParams carries the order-entry form data that accompanies the
// supplier and item selections. The free-text fields and ship date are
// optional at build time.
type BuildParams struct {
	Quantity             int
	PlacedByID           int64
	ShippingAddressLine1 *string
	InternalNotes        *string
	VendorNotes          *string
	RequestedShipDate    *time.Time
}

// Builder assembles new PurchaseOrder aggregates. The clock is injectable
// so tests get deterministic placement times.
type Builder struct {
	now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{now: func() time.Time { return time.Now().UTC() }}
}

func NewBuilderWithClock(now func() time.Time) *Builder {
	return &Builder{now: now}
}

// Build validates the selections and returns a Draft order with a fresh
// id and poNumber, placementTime set to the current time, and one line
// item snapshotting the item's price and currency. The snapshot is what
// keeps later catalog price changes from altering existing orders.
func (b *Builder) Build(supplier *domain.Supplier, item *domain.Item, params BuildParams) (*domain.PurchaseOrder, error) {
	var details []errors.ValidationDetail

	if supplier == nil {
		details = append(details, errors.ValidationDetail{
			Field:   "supplier",
			Message: "a supplier must be selected",
		})
	}
	if item == nil {
		details = append(details, errors.ValidationDetail{
			Field:   "item",
			Message: "an item must be selected",
		})
	}
	if params.Quantity < 1 {
		details = append(details, errors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if len(details) > 0 {
		return nil, errors.NewValidationError("validation failed", details...)
	}

	orderID := nextID()
	supplierCopy := *supplier
	itemCopy := *item

	return &domain.PurchaseOrder{
		ID:          orderID,
		PONumber:    fmt.Sprintf("PO-%d", orderID),
		SupplierID:  supplier.ID,
		Supplier:    &supplierCopy,
		PlacedByID:  params.PlacedByID,
		OrderStatus: domain.OrderStatusDraft,
		Items: []domain.OrderLineItem{
			{
				ID:              nextID(),
				ItemID:          item.ID,
				Item:            &itemCopy,
				Quantity:        params.Quantity,
				Price:           item.Price,
				PriceCurrency:   item.PriceCurrency,
				PurchaseOrderID: orderID,
			},
		},
		ShippingAddressLine1: params.ShippingAddressLine1,
		InternalNotes:        params.InternalNotes,
		VendorNotes:          params.VendorNotes,
		PlacementTime:        b.now(),
		RequestedShipDate:    params.RequestedShipDate,
		Approvals:            []domain.Approval{},
	}, nil
}

var idSeq atomic.Int64

// nextID derives identifiers from the wall clock, like the original
// Date.now() scheme, with a counter suffix so two builds in the same
// millisecond cannot collide.
func nextID() int64 {
	return time.Now().UnixMilli()*1000 + idSeq.Add(1)%1000
}
