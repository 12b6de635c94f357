package testutil

import (
	"strconv"
	"time"

	"github.com/lglucin/didero-takehome/internal/domain"
)

// Fixture builders shared by package tests. Values are deliberately
// boring; tests that care about a field override it after building.

func StringPtr(s string) *string {
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func NewTestSupplier(id int64) *domain.Supplier {
	return &domain.Supplier{
		ID:   id,
		Name: "Acme Industrial Supply",
	}
}

func NewTestItem(id, supplierID int64) *domain.Item {
	return &domain.Item{
		ID:            id,
		SupplierID:    supplierID,
		ItemName:      "M8 Hex Bolt (box of 100)",
		Price:         12.50,
		PriceCurrency: "USD",
	}
}

func NewTestOrder(id int64) *domain.PurchaseOrder {
	supplier := NewTestSupplier(1)
	item := NewTestItem(10, supplier.ID)

	return &domain.PurchaseOrder{
		ID:          id,
		PONumber:    "PO-" + strconv.FormatInt(id, 10),
		SupplierID:  supplier.ID,
		Supplier:    supplier,
		PlacedByID:  1,
		OrderStatus: domain.OrderStatusDraft,
		Items: []domain.OrderLineItem{
			{
				ID:              id*100 + 1,
				ItemID:          item.ID,
				Item:            item,
				Quantity:        2,
				Price:           item.Price,
				PriceCurrency:   item.PriceCurrency,
				PurchaseOrderID: id,
			},
		},
		ShippingAddressLine1: StringPtr("123 Fake Street"),
		InternalNotes:        StringPtr("test order"),
		VendorNotes:          StringPtr("test order"),
		PlacementTime:        time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Approvals:            []domain.Approval{},
	}
}
