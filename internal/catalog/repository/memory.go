package repository

import (
	"context"
	"sync"
	"time"

	"product-catalog/internal/catalog"
)

// MemoryRepository keeps products in insertion order. It backs the
// "memory" store driver and the unit tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
	nextID   int64
}

func NewMemory(seed ...catalog.Product) *MemoryRepository {
	r := &MemoryRepository{nextID: 1}
	for _, p := range seed {
		p.ID = r.nextID
		r.nextID++
		r.products = append(r.products, p)
	}
	return r
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.products[i], nil
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (r *MemoryRepository) Insert(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *MemoryRepository) Update(ctx context.Context, p catalog.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return catalog.ErrNotFound
	}
	r.products[i] = p
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return catalog.ErrNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *MemoryRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return catalog.ErrNotFound
	}
	if r.products[i].Quantity < quantity {
		return catalog.ErrInsufficientStock
	}
	r.products[i].Quantity -= quantity
	return nil
}

func (r *MemoryRepository) RestoreStock(ctx context.Context, id int64, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return catalog.ErrNotFound
	}
	r.products[i].Quantity += quantity
	return nil
}

func (r *MemoryRepository) Health() error {
	return nil
}

func (r *MemoryRepository) indexOf(id int64) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []catalog.Order
}

func NewMemoryOrders() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) SaveOrder(ctx context.Context, order catalog.Order) (catalog.Order, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = int64(len(r.orders) + 1)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *MemoryOrderRepository) GetOrder(ctx context.Context, id int64) (catalog.Order, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 1 || id > int64(len(r.orders)) {
		return catalog.Order{}, catalog.ErrNotFound
	}
	return r.orders[id-1], nil
}
