package domain

import "github.com/shopspring/decimal"

// Product is the single persisted record type. ID and CreatedDate are
// assigned by the store on creation and never change afterwards.
type Product struct {
	ID          int64           `db:"id" json:"id" csv:"id"`
	Name        string          `db:"name" json:"name" csv:"name"`
	Category    string          `db:"category" json:"category" csv:"category"`
	Price       decimal.Decimal `db:"price" json:"price" csv:"price"`
	Quantity    int             `db:"quantity" json:"quantity" csv:"quantity"`
	CreatedDate string          `db:"created_date" json:"created_date" csv:"created_date"`
}

// PriceDisplay renders the price with two decimal places for templates.
func (p Product) PriceDisplay() string { return p.Price.StringFixed(2) }
