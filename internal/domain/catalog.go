package domain

// Supplier and Item are owned by the catalog. Orders embed copies of them
// as display snapshots; nothing re-resolves a snapshot against the live
// catalog after the order is built.
type Supplier struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Item struct {
	ID            int64   `json:"id"`
	SupplierID    int64   `json:"supplierId"`
	ItemName      string  `json:"itemName"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
}
