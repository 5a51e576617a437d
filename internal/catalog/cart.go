package catalog

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Cart is read-only access to the lines of a shopping cart.
type Cart interface {
	Lines() []CartLine
}

// SessionCart keeps at most one line per product ID. It is safe for
// concurrent use.
type SessionCart struct {
	mu    sync.RWMutex
	lines []CartLine
}

var _ Cart = (*SessionCart)(nil)

func NewSessionCart() *SessionCart {
	return &SessionCart{}
}

// Snapshot is a fixed list of lines, such as one taken from a SessionCart
// before checkout.
type Snapshot []CartLine

func (s Snapshot) Lines() []CartLine {
	return s
}

// AddItem adds quantity to the product's line, creating it if needed. The
// line keeps the given pointer until Refresh replaces it.
func (c *SessionCart) AddItem(product *Product, quantity int) {
	if product == nil || quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Product = product
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
}

// Refresh points the product's line, if any, at a newer copy of the
// product so prices and names follow edits made after it was added.
func (c *SessionCart) Refresh(product *Product) {
	if product == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Product = product
			return
		}
	}
}

// Subtract takes quantity off the product's line and drops the line once
// nothing is left. Units added after a checkout snapshot survive it.
func (c *SessionCart) Subtract(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		c.lines[i].Quantity -= quantity
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// RemoveLine drops the product's line and reports whether it existed.
func (c *SessionCart) RemoveLine(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (c *SessionCart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Lines returns a snapshot in insertion order.
func (c *SessionCart) Lines() []CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *SessionCart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines() {
		total = total.Add(line.Subtotal())
	}
	return total
}
