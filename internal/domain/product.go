package domain

import "time"

// Product is a catalog item consumable by history events (purchase orders,
// repair parts). Listing treats a product as active while it has no sell end
// date or the sell end date is in the future.
type Product struct {
	ID            int32      `json:"id"`
	Name          string     `json:"name"`
	ProductNumber string     `json:"product_number"`
	ListPrice     float64    `json:"list_price"`
	Color         *string    `json:"color,omitempty"`
	Size          *string    `json:"size,omitempty"`
	SellStartDate time.Time  `json:"sell_start_date"`
	SellEndDate   *time.Time `json:"sell_end_date,omitempty"`
}

// IsActive reports whether the product is still sellable.
func (p *Product) IsActive(now time.Time) bool {
	return p.SellEndDate == nil || p.SellEndDate.After(now)
}
