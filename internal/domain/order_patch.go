package domain

import "time"

// OrderPatch is a partial representation of a PurchaseOrder. A nil field
// means "leave it alone"; a set field replaces the stored value at the top
// level. Items and Approvals are replaced wholesale, never merged per
// element. ID, PONumber and PlacementTime are immutable and have no patch
// fields; unknown or immutable keys in a request body are ignored.
type OrderPatch struct {
	SupplierID           *int64           `json:"supplierId,omitempty"`
	Supplier             *Supplier        `json:"supplier,omitempty"`
	PlacedByID           *int64           `json:"placedById,omitempty"`
	Items                *[]OrderLineItem `json:"items,omitempty"`
	OrderStatus          *OrderStatus     `json:"orderStatus,omitempty"`
	ShippingAddressLine1 *string          `json:"shippingAddressLine1,omitempty"`
	InternalNotes        *string          `json:"internalNotes,omitempty"`
	VendorNotes          *string          `json:"vendorNotes,omitempty"`
	RequestedShipDate    *time.Time       `json:"requestedShipDate,omitempty"`
	Approvals            *[]Approval      `json:"approvals,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all. An empty
// patch is a request error, not a no-op success.
func (p OrderPatch) IsEmpty() bool {
	return p.SupplierID == nil &&
		p.Supplier == nil &&
		p.PlacedByID == nil &&
		p.Items == nil &&
		p.OrderStatus == nil &&
		p.ShippingAddressLine1 == nil &&
		p.InternalNotes == nil &&
		p.VendorNotes == nil &&
		p.RequestedShipDate == nil &&
		p.Approvals == nil
}

// Apply performs the shallow merge onto order in place.
func (p OrderPatch) Apply(order *PurchaseOrder) {
	if p.SupplierID != nil {
		order.SupplierID = *p.SupplierID
	}
	if p.Supplier != nil {
		supplier := *p.Supplier
		order.Supplier = &supplier
	}
	if p.PlacedByID != nil {
		order.PlacedByID = *p.PlacedByID
	}
	if p.Items != nil {
		order.Items = append([]OrderLineItem(nil), (*p.Items)...)
	}
	if p.OrderStatus != nil {
		order.OrderStatus = *p.OrderStatus
	}
	if p.ShippingAddressLine1 != nil {
		v := *p.ShippingAddressLine1
		order.ShippingAddressLine1 = &v
	}
	if p.InternalNotes != nil {
		v := *p.InternalNotes
		order.InternalNotes = &v
	}
	if p.VendorNotes != nil {
		v := *p.VendorNotes
		order.VendorNotes = &v
	}
	if p.RequestedShipDate != nil {
		v := *p.RequestedShipDate
		order.RequestedShipDate = &v
	}
	if p.Approvals != nil {
		order.Approvals = append([]Approval(nil), (*p.Approvals)...)
	}
}
