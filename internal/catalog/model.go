package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventsQueue          = "catalog.events"
	EventCreated         = "product_created"
	EventUpdated         = "product_updated"
	EventDeleted         = "product_deleted"
	EventStockReconciled = "stock_reconciled"
	EventStockRestored   = "stock_restored"
)

// SubmittedProduct is product data as typed by a user. Every field except ID
// is raw text; ID is zero until the repository assigns one.
type SubmittedProduct struct {
	ID          int64  `json:"id,omitempty" example:"1"`
	Name        string `json:"name" example:"Kettle"`
	Description string `json:"description" example:"Stainless steel kettle"`
	Details     string `json:"details" example:"1.7 litres, 2200 W"`
	Price       string `json:"price" example:"24.99"`
	Stock       string `json:"stock" example:"12"`
}

// HasID reports whether the submission targets an existing product.
func (p SubmittedProduct) HasID() bool {
	return p.ID != 0
}

// Product is the persisted entity. Price is always positive and Quantity
// never negative.
type Product struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Kettle"`
	Description string          `json:"description" example:"Stainless steel kettle"`
	Details     string          `json:"details" example:"1.7 litres, 2200 W"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"24.99"`
	Quantity    int             `json:"quantity" example:"12"`
}

// CartLine points at a product rather than holding a copy of it.
type CartLine struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity" example:"2"`
}

// Subtotal is the line price at the referenced product's current price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID        int64           `json:"id" example:"1"`
	Lines     []OrderLine     `json:"lines"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"49.98"`
	CreatedAt time.Time       `json:"created_at" example:"2026-02-24T12:00:00Z"`
}

type OrderLine struct {
	ProductID   int64           `json:"product_id" example:"1"`
	ProductName string          `json:"product_name" example:"Kettle"`
	Quantity    int             `json:"quantity" example:"2"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"24.99"`
}

type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
