package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"product-catalog/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type mockRepo struct {
	getAllFn      func(ctx context.Context) ([]catalog.Product, error)
	getByIDFn     func(ctx context.Context, id int64) (catalog.Product, error)
	insertFn      func(ctx context.Context, p catalog.Product) (catalog.Product, error)
	updateFn      func(ctx context.Context, p catalog.Product) error
	deleteFn      func(ctx context.Context, id int64) error
	updateStockFn func(ctx context.Context, id int64, quantity int) error
	restoreFn     func(ctx context.Context, id int64, quantity int) error

	inserts      int
	updates      int
	stockCalls   map[int64][]int
	restoreCalls map[int64][]int
}

func (m *mockRepo) GetAll(ctx context.Context) ([]catalog.Product, error) {
	return m.getAllFn(ctx)
}
func (m *mockRepo) GetByID(ctx context.Context, id int64) (catalog.Product, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockRepo) Insert(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	m.inserts++
	return m.insertFn(ctx, p)
}
func (m *mockRepo) Update(ctx context.Context, p catalog.Product) error {
	m.updates++
	return m.updateFn(ctx, p)
}
func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
func (m *mockRepo) UpdateStock(ctx context.Context, id int64, quantity int) error {
	if m.stockCalls == nil {
		m.stockCalls = make(map[int64][]int)
	}
	m.stockCalls[id] = append(m.stockCalls[id], quantity)
	return m.updateStockFn(ctx, id, quantity)
}
func (m *mockRepo) RestoreStock(ctx context.Context, id int64, quantity int) error {
	if m.restoreCalls == nil {
		m.restoreCalls = make(map[int64][]int)
	}
	m.restoreCalls[id] = append(m.restoreCalls[id], quantity)
	if m.restoreFn == nil {
		return nil
	}
	return m.restoreFn(ctx, id, quantity)
}

type mockPublisher struct {
	events []catalog.ProductEvent
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, event catalog.ProductEvent) error {
	m.events = append(m.events, event)
	return m.err
}

type mockOrders struct {
	saved []catalog.Order
	err   error
}

func (m *mockOrders) SaveOrder(_ context.Context, order catalog.Order) (catalog.Order, error) {
	if m.err != nil {
		return catalog.Order{}, m.err
	}
	order.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, order)
	return order, nil
}

func (m *mockOrders) GetOrder(_ context.Context, id int64) (catalog.Order, error) {
	if m.err != nil {
		return catalog.Order{}, m.err
	}
	if id < 1 || id > int64(len(m.saved)) {
		return catalog.Order{}, catalog.ErrNotFound
	}
	return m.saved[id-1], nil
}

func testMetrics() Metrics {
	return Metrics{
		Created:            prometheus.NewCounter(prometheus.CounterOpts{Name: "t_created", Help: "t"}),
		Updated:            prometheus.NewCounter(prometheus.CounterOpts{Name: "t_updated", Help: "t"}),
		Deleted:            prometheus.NewCounter(prometheus.CounterOpts{Name: "t_deleted", Help: "t"}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{Name: "t_invalid", Help: "t"}),
		StockLines:         prometheus.NewCounterVec(prometheus.CounterOpts{Name: "t_stock", Help: "t"}, []string{"result"}),
	}
}

func newTestService(repo Repository, orders OrderHistory, pub Publisher) *Service {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return New(repo, orders, pub, logger, testMetrics())
}

func mockedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Produit 1", Price: decimal.RequireFromString("10.99"), Quantity: 100, Description: "Description 1", Details: "Details 1"},
		{ID: 2, Name: "Produit 2", Price: decimal.RequireFromString("20.99"), Quantity: 50, Description: "Description 2", Details: "Details 2"},
		{ID: 3, Name: "Produit 3", Price: decimal.RequireFromString("30.99"), Quantity: 25, Description: "Description 3", Details: "Details 3"},
	}
}

func defaultRepo() *mockRepo {
	return &mockRepo{
		getAllFn: func(_ context.Context) ([]catalog.Product, error) { return mockedProducts(), nil },
		getByIDFn: func(_ context.Context, id int64) (catalog.Product, error) {
			for _, p := range mockedProducts() {
				if p.ID == id {
					return p, nil
				}
			}
			return catalog.Product{}, catalog.ErrNotFound
		},
		insertFn: func(_ context.Context, p catalog.Product) (catalog.Product, error) {
			p.ID = 42
			return p, nil
		},
		updateFn:      func(_ context.Context, _ catalog.Product) error { return nil },
		deleteFn:      func(_ context.Context, _ int64) error { return nil },
		updateStockFn: func(_ context.Context, _ int64, _ int) error { return nil },
	}
}

func TestListAll(t *testing.T) {
	svc := newTestService(defaultRepo(), &mockOrders{}, &mockPublisher{})

	views, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("want 3 products, got %d", len(views))
	}
	for i, want := range mockedProducts() {
		if views[i].Name != want.Name {
			t.Fatalf("position %d: want %q, got %q", i, want.Name, views[i].Name)
		}
	}
}

func TestListAll_StorageErrorIsPropagated(t *testing.T) {
	errDB := errors.New("db down")
	repo := defaultRepo()
	repo.getAllFn = func(_ context.Context) ([]catalog.Product, error) { return nil, errDB }
	svc := newTestService(repo, &mockOrders{}, &mockPublisher{})

	if _, err := svc.ListAll(context.Background()); !errors.Is(err, errDB) {
		t.Fatalf("want error wrapping %v, got %v", errDB, err)
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService(defaultRepo(), &mockOrders{}, &mockPublisher{})

	t.Run("existing product", func(t *testing.T) {
		vm, ok, err := svc.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected product to be found")
		}
		if vm.ID != 1 || vm.Name != "Produit 1" || vm.Stock != "100" || vm.Price != "10.99" {
			t.Fatalf("unexpected view model: %+v", vm)
		}
	})

	t.Run("absent product is not an error", func(t *testing.T) {
		_, ok, err := svc.GetByID(context.Background(), 999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected product to be absent")
		}
	})
}

func TestFetchRaw(t *testing.T) {
	svc := newTestService(defaultRepo(), &mockOrders{}, &mockPublisher{})

	p, ok, err := svc.FetchRaw(context.Background(), 2)
	if err != nil || !ok {
		t.Fatalf("want product, got ok=%v err=%v", ok, err)
	}
	if p.Quantity != 50 || !p.Price.Equal(decimal.RequireFromString("20.99")) {
		t.Fatalf("unexpected product: %+v", p)
	}

	_, ok, err = svc.FetchRaw(context.Background(), 999)
	if err != nil || ok {
		t.Fatalf("want absent, got ok=%v err=%v", ok, err)
	}
}

func TestSave(t *testing.T) {
	errDB := errors.New("db down")

	valid := catalog.SubmittedProduct{Name: "n", Description: "d", Details: "x", Price: "100", Stock: "50"}
	withID := valid
	withID.ID = 3

	tests := []struct {
		name        string
		input       catalog.SubmittedProduct
		insertErr   error
		updateErr   error
		wantErr     error
		wantKinds   []catalog.ErrorKind
		wantInserts int
		wantUpdates int
		wantEvent   string
	}{
		{
			name:        "insert without id",
			input:       valid,
			wantInserts: 1,
			wantEvent:   catalog.EventCreated,
		},
		{
			name:        "update with id",
			input:       withID,
			wantUpdates: 1,
			wantEvent:   catalog.EventUpdated,
		},
		{
			name:      "validation failure writes nothing",
			input:     catalog.SubmittedProduct{Description: "d", Details: "x", Price: "abc", Stock: "50"},
			wantErr:   catalog.ErrValidationFailed,
			wantKinds: []catalog.ErrorKind{catalog.MissingName, catalog.PriceNotANumber},
		},
		{
			name:        "update of missing product",
			input:       withID,
			updateErr:   catalog.ErrNotFound,
			wantErr:     catalog.ErrNotFound,
			wantUpdates: 1,
		},
		{
			name:        "storage error is wrapped",
			input:       valid,
			insertErr:   errDB,
			wantErr:     errDB,
			wantInserts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := defaultRepo()
			repo.insertFn = func(_ context.Context, p catalog.Product) (catalog.Product, error) {
				if tt.insertErr != nil {
					return catalog.Product{}, tt.insertErr
				}
				p.ID = 42
				return p, nil
			}
			repo.updateFn = func(_ context.Context, _ catalog.Product) error { return tt.updateErr }
			pub := &mockPublisher{}
			svc := newTestService(repo, &mockOrders{}, pub)

			product, err := svc.Save(context.Background(), tt.input)

			if repo.inserts != tt.wantInserts {
				t.Fatalf("want %d inserts, got %d", tt.wantInserts, repo.inserts)
			}
			if repo.updates != tt.wantUpdates {
				t.Fatalf("want %d updates, got %d", tt.wantUpdates, repo.updates)
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error wrapping %v, got %v", tt.wantErr, err)
				}
				if len(pub.events) != 0 {
					t.Fatalf("want no events, got %v", pub.events)
				}
				if tt.wantKinds != nil {
					var verr *catalog.ValidationError
					if !errors.As(err, &verr) {
						t.Fatalf("want *catalog.ValidationError, got %T", err)
					}
					for _, k := range tt.wantKinds {
						if !verr.Has(k) {
							t.Fatalf("want kind %s in %v", k, verr.Kinds)
						}
					}
					if len(verr.Kinds) != len(tt.wantKinds) {
						t.Fatalf("want kinds %v, got %v", tt.wantKinds, verr.Kinds)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !product.Price.Equal(decimal.NewFromInt(100)) || product.Quantity != 50 {
				t.Fatalf("want price 100 and quantity 50, got %s and %d", product.Price, product.Quantity)
			}
			if len(pub.events) != 1 || pub.events[0].EventType != tt.wantEvent {
				t.Fatalf("want event %q, got %v", tt.wantEvent, pub.events)
			}
		})
	}
}

func TestSave_PublishFail_StillReturnsProduct(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := newTestService(defaultRepo(), &mockOrders{}, pub)

	product, err := svc.Save(context.Background(), catalog.SubmittedProduct{
		Name: "Widget", Description: "d", Details: "x", Price: "9.99", Stock: "3",
	})
	if err != nil {
		t.Fatalf("expected no error despite publish failure, got: %v", err)
	}
	if product.ID != 42 || product.Name != "Widget" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantErr   error
		wantEvent string
	}{
		{
			name:      "success",
			wantEvent: catalog.EventDeleted,
		},
		{
			name:    "not found",
			repoErr: catalog.ErrNotFound,
			wantErr: catalog.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := defaultRepo()
			repo.deleteFn = func(_ context.Context, _ int64) error { return tt.repoErr }
			pub := &mockPublisher{}
			svc := newTestService(repo, &mockOrders{}, pub)

			err := svc.Delete(context.Background(), 1)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pub.events) != 1 || pub.events[0].EventType != tt.wantEvent {
				t.Fatalf("want event %q, got %v", tt.wantEvent, pub.events)
			}
		})
	}
}

func TestCheckout(t *testing.T) {
	products := mockedProducts()

	t.Run("records order for applied lines", func(t *testing.T) {
		cart := catalog.NewSessionCart()
		cart.AddItem(&products[0], 2)
		cart.AddItem(&products[1], 1)

		orders := &mockOrders{}
		svc := newTestService(defaultRepo(), orders, &mockPublisher{})

		order, report, err := svc.Checkout(context.Background(), cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Complete() {
			t.Fatalf("want complete report, got %+v", report.Failed)
		}
		if order.ID != 1 || len(order.Lines) != 2 {
			t.Fatalf("unexpected order: %+v", order)
		}
		if got := order.Total.StringFixed(2); got != "42.97" {
			t.Fatalf("want total 42.97, got %s", got)
		}
		if len(cart.Lines()) != 2 {
			t.Fatal("checkout must not modify the cart")
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		svc := newTestService(defaultRepo(), &mockOrders{}, &mockPublisher{})
		_, _, err := svc.Checkout(context.Background(), catalog.NewSessionCart())
		if !errors.Is(err, catalog.ErrEmptyCart) {
			t.Fatalf("want ErrEmptyCart, got %v", err)
		}
	})

	t.Run("nothing reconciled records no order", func(t *testing.T) {
		repo := defaultRepo()
		repo.updateStockFn = func(_ context.Context, _ int64, _ int) error { return catalog.ErrNotFound }
		orders := &mockOrders{}
		svc := newTestService(repo, orders, &mockPublisher{})

		cart := catalog.NewSessionCart()
		cart.AddItem(&products[0], 1)

		_, report, err := svc.Checkout(context.Background(), cart)
		if !errors.Is(err, catalog.ErrNothingReconciled) {
			t.Fatalf("want ErrNothingReconciled, got %v", err)
		}
		if len(report.Failed) != 1 {
			t.Fatalf("want 1 failed line, got %d", len(report.Failed))
		}
		if len(orders.saved) != 0 {
			t.Fatalf("want no order saved, got %d", len(orders.saved))
		}
	})

	t.Run("order history failure is surfaced", func(t *testing.T) {
		errDB := errors.New("db down")
		repo := defaultRepo()
		svc := newTestService(repo, &mockOrders{err: errDB}, &mockPublisher{})

		cart := catalog.NewSessionCart()
		cart.AddItem(&products[2], 1)

		_, report, err := svc.Checkout(context.Background(), cart)
		if !errors.Is(err, errDB) {
			t.Fatalf("want error wrapping %v, got %v", errDB, err)
		}
		if len(report.Applied) != 0 || len(report.Reverted) != 1 {
			t.Fatalf("want the applied line reverted, got %+v", report)
		}
		if got := repo.restoreCalls[products[2].ID]; len(got) != 1 || got[0] != 1 {
			t.Fatalf("want RestoreStock(%d, 1) once, got %v", products[2].ID, repo.restoreCalls)
		}
	})

	t.Run("restore failure is reported with the cause", func(t *testing.T) {
		errDB := errors.New("db down")
		errRestore := errors.New("restore refused")
		repo := defaultRepo()
		repo.restoreFn = func(_ context.Context, _ int64, _ int) error { return errRestore }
		svc := newTestService(repo, &mockOrders{err: errDB}, &mockPublisher{})

		cart := catalog.NewSessionCart()
		cart.AddItem(&products[0], 1)

		_, report, err := svc.Checkout(context.Background(), cart)
		if !errors.Is(err, errDB) || !errors.Is(err, errRestore) {
			t.Fatalf("want both errors, got %v", err)
		}
		if len(report.Applied) != 1 || len(report.Reverted) != 0 {
			t.Fatalf("want the line left applied, got %+v", report)
		}
	})
}

func TestOrder(t *testing.T) {
	products := mockedProducts()
	orders := &mockOrders{}
	svc := newTestService(defaultRepo(), orders, &mockPublisher{})

	cart := catalog.NewSessionCart()
	cart.AddItem(&products[0], 1)
	placed, _, err := svc.Checkout(context.Background(), cart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := svc.Order(context.Background(), placed.ID)
	if err != nil || !ok {
		t.Fatalf("want order, got ok=%v err=%v", ok, err)
	}
	if len(got.Lines) != 1 || got.Lines[0].ProductID != products[0].ID {
		t.Fatalf("unexpected order: %+v", got)
	}

	_, ok, err = svc.Order(context.Background(), 999)
	if err != nil || ok {
		t.Fatalf("want absent order, got ok=%v err=%v", ok, err)
	}
}
