package workflow

import (
	"context"
	"time"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/order/builder"
)

// OrderForm holds the transient view state of the order-entry flow: the
// supplier and item the user picked plus the form fields. It validates
// client-side before submitting, and the API validates again on its own
// side of the trust boundary.
type OrderForm struct {
	Supplier             *domain.Supplier
	Item                 *domain.Item
	Quantity             int
	PlacedByID           int64
	ShippingAddressLine1 string
	InternalNotes        string
	VendorNotes          string
	RequestedShipDate    *time.Time

	builder *builder.Builder
}

func NewOrderForm() *OrderForm {
	return &OrderForm{
		Quantity: 1,
		builder:  builder.NewBuilder(),
	}
}

// SelectSupplier records the selection and clears any previously chosen
// item, since items are listed per supplier.
func (f *OrderForm) SelectSupplier(supplier *domain.Supplier) {
	if f.Supplier != nil && supplier != nil && f.Supplier.ID == supplier.ID {
		f.Supplier = supplier
		return
	}
	f.Supplier = supplier
	f.Item = nil
}

func (f *OrderForm) SelectItem(item *domain.Item) {
	f.Item = item
}

// Build assembles the order from the current form state, failing before
// any request is made when the selections are incomplete.
func (f *OrderForm) Build() (*domain.PurchaseOrder, error) {
	params := builder.BuildParams{
		Quantity:          f.Quantity,
		PlacedByID:        f.PlacedByID,
		RequestedShipDate: f.RequestedShipDate,
	}
	if f.ShippingAddressLine1 != "" {
		v := f.ShippingAddressLine1
		params.ShippingAddressLine1 = &v
	}
	if f.InternalNotes != "" {
		v := f.InternalNotes
		params.InternalNotes = &v
	}
	if f.VendorNotes != "" {
		v := f.VendorNotes
		params.VendorNotes = &v
	}

	return f.builder.Build(f.Supplier, f.Item, params)
}

// Submit builds and posts the order. A validation failure surfaces
// before the request; stored data is never touched on failure.
func (f *OrderForm) Submit(ctx context.Context, client *Client) (*domain.PurchaseOrder, error) {
	order, err := f.Build()
	if err != nil {
		return nil, err
	}

	created, err := client.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	return created, nil
}
