package domain

import "time"

// PurchaseOrder is the aggregate root. ID, PONumber and PlacementTime are
// assigned once at build time and never change; everything else may be
// replaced through a merge patch.
type PurchaseOrder struct {
	ID                   int64           `json:"id"`
	PONumber             string          `json:"poNumber"`
	SupplierID           int64           `json:"supplierId"`
	Supplier             *Supplier       `json:"supplier"`
	PlacedByID           int64           `json:"placedById"`
	Items                []OrderLineItem `json:"items"`
	OrderStatus          OrderStatus     `json:"orderStatus"`
	ShippingAddressLine1 *string         `json:"shippingAddressLine1"`
	InternalNotes        *string         `json:"internalNotes"`
	VendorNotes          *string         `json:"vendorNotes"`
	PlacementTime        time.Time       `json:"placementTime"`
	RequestedShipDate    *time.Time      `json:"requestedShipDate"`
	Approvals            []Approval      `json:"approvals"`
}

// OrderLineItem belongs to exactly one order. Price and PriceCurrency are
// snapshots taken from the catalog item when the order was built; later
// catalog changes must not alter them.
type OrderLineItem struct {
	ID              int64   `json:"id"`
	ItemID          int64   `json:"itemId"`
	Item            *Item   `json:"item"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	PriceCurrency   string  `json:"priceCurrency"`
	PurchaseOrderID int64   `json:"purchaseOrderId"`
}

type Approval struct {
	ID         int64     `json:"id"`
	ApproverID int64     `json:"approverId"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// Clone returns a deep copy of the order so callers can hand aggregates
// across the repository boundary without sharing mutable state.
func (o *PurchaseOrder) Clone() *PurchaseOrder {
	if o == nil {
		return nil
	}

	clone := *o

	if o.Supplier != nil {
		supplier := *o.Supplier
		clone.Supplier = &supplier
	}
	if o.ShippingAddressLine1 != nil {
		v := *o.ShippingAddressLine1
		clone.ShippingAddressLine1 = &v
	}
	if o.InternalNotes != nil {
		v := *o.InternalNotes
		clone.InternalNotes = &v
	}
	if o.VendorNotes != nil {
		v := *o.VendorNotes
		clone.VendorNotes = &v
	}
	if o.RequestedShipDate != nil {
		v := *o.RequestedShipDate
		clone.RequestedShipDate = &v
	}

	if o.Items != nil {
		clone.Items = make([]OrderLineItem, len(o.Items))
		for i, li := range o.Items {
			if li.Item != nil {
				item := *li.Item
				li.Item = &item
			}
			clone.Items[i] = li
		}
	}

	if o.Approvals != nil {
		clone.Approvals = make([]Approval, len(o.Approvals))
		copy(clone.Approvals, o.Approvals)
	}

	return &clone
}
