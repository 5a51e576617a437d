package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"product-catalog/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type Repository interface {
	GetAll(ctx context.Context) ([]catalog.Product, error)
	GetByID(ctx context.Context, id int64) (catalog.Product, error)
	Insert(ctx context.Context, product catalog.Product) (catalog.Product, error)
	Update(ctx context.Context, product catalog.Product) error
	Delete(ctx context.Context, id int64) error
	UpdateStock(ctx context.Context, id int64, quantity int) error
	RestoreStock(ctx context.Context, id int64, quantity int) error
}

type OrderHistory interface {
	SaveOrder(ctx context.Context, order catalog.Order) (catalog.Order, error)
	GetOrder(ctx context.Context, id int64) (catalog.Order, error)
}

type Publisher interface {
	Publish(ctx context.Context, event catalog.ProductEvent) error
}

type Metrics struct {
	Created            prometheus.Counter
	Updated            prometheus.Counter
	Deleted            prometheus.Counter
	ValidationFailures prometheus.Counter
	// StockLines is labelled by result: "applied" or "failed".
	StockLines *prometheus.CounterVec
}

type Service struct {
	repo       Repository
	orders     OrderHistory
	publisher  Publisher
	logger     *slog.Logger
	metrics    Metrics
	reconciler *StockReconciler
}

func New(repo Repository, orders OrderHistory, publisher Publisher, logger *slog.Logger, metrics Metrics) *Service {
	return &Service{
		repo:       repo,
		orders:     orders,
		publisher:  publisher,
		logger:     logger,
		metrics:    metrics,
		reconciler: NewStockReconciler(repo, publisher, logger, metrics.StockLines),
	}
}

// ListAll returns every product in display form, in repository order.
func (s *Service) ListAll(ctx context.Context) ([]catalog.SubmittedProduct, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo get all: %w", err)
	}
	return catalog.ToViewModels(products), nil
}

// GetByID reports false, without error, when the product does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (catalog.SubmittedProduct, bool, error) {
	product, ok, err := s.FetchRaw(ctx, id)
	if err != nil || !ok {
		return catalog.SubmittedProduct{}, false, err
	}
	return catalog.ToViewModel(product), true, nil
}

func (s *Service) FetchRaw(ctx context.Context, id int64) (catalog.Product, bool, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return catalog.Product{}, false, nil
	}
	if err != nil {
		return catalog.Product{}, false, fmt.Errorf("repo get %d: %w", id, err)
	}
	return product, true, nil
}

// Save validates the submission and then inserts it, or updates the product
// it names. Nothing is written unless every rule passes.
func (s *Service) Save(ctx context.Context, input catalog.SubmittedProduct) (catalog.Product, error) {
	if kinds := catalog.Validate(input); len(kinds) > 0 {
		s.metrics.ValidationFailures.Inc()
		return catalog.Product{}, &catalog.ValidationError{Kinds: kinds}
	}

	product, err := catalog.ToEntity(input)
	if err != nil {
		s.logger.Error("validated product failed to parse",
			"product_id", input.ID,
			"price", input.Price,
			"stock", input.Stock,
			"error", err,
		)
		return catalog.Product{}, fmt.Errorf("%w: %w", catalog.ErrInternal, err)
	}

	if !input.HasID() {
		return s.insert(ctx, product)
	}
	return s.update(ctx, product)
}

func (s *Service) insert(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("repo insert: %w", err)
	}

	s.publish(ctx, catalog.ProductEvent{
		EventType: catalog.EventCreated,
		ProductID: created.ID,
		Name:      created.Name,
		Quantity:  created.Quantity,
	})

	s.metrics.Created.Inc()
	return created, nil
}

func (s *Service) update(ctx context.Context, product catalog.Product) (catalog.Product, error) {
	if err := s.repo.Update(ctx, product); err != nil {
		return catalog.Product{}, fmt.Errorf("repo update %d: %w", product.ID, err)
	}

	s.publish(ctx, catalog.ProductEvent{
		EventType: catalog.EventUpdated,
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  product.Quantity,
	})

	s.metrics.Updated.Inc()
	return product, nil
}

// Delete removes the product only. Cart lines and orders that reference it
// are left for their owners to deal with.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	s.publish(ctx, catalog.ProductEvent{
		EventType: catalog.EventDeleted,
		ProductID: id,
	})

	s.metrics.Deleted.Inc()
	return nil
}

func (s *Service) ReconcileStockFromCart(ctx context.Context, cart catalog.Cart) (ReconcileReport, error) {
	return s.reconciler.Reconcile(ctx, cart)
}

// Checkout reconciles stock for one snapshot of the cart's lines and records
// an order for the lines that were applied, priced at the products' current
// state. It either records the order or gives all the stock back: when a
// storage error stops the run, or the order cannot be read back or saved,
// the applied lines are reverted before the error is returned. The cart
// itself is not modified.
func (s *Service) Checkout(ctx context.Context, cart catalog.Cart) (catalog.Order, ReconcileReport, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return catalog.Order{}, ReconcileReport{}, catalog.ErrEmptyCart
	}

	report, err := s.ReconcileStockFromCart(ctx, catalog.Snapshot(lines))
	if err != nil {
		return catalog.Order{}, report, s.abort(ctx, &report, err)
	}
	if len(report.Applied) == 0 {
		return catalog.Order{}, report, catalog.ErrNothingReconciled
	}

	order, err := s.newOrder(ctx, report.Applied)
	if err != nil {
		return catalog.Order{}, report, s.abort(ctx, &report, err)
	}

	saved, err := s.orders.SaveOrder(ctx, order)
	if err != nil {
		return catalog.Order{}, report, s.abort(ctx, &report, fmt.Errorf("repo save order: %w", err))
	}
	return saved, report, nil
}

// newOrder re-reads every applied product so the order carries the name and
// price in effect at checkout, not the ones seen when the line was added.
func (s *Service) newOrder(ctx context.Context, applied []catalog.CartLine) (catalog.Order, error) {
	order := catalog.Order{
		Lines:     make([]catalog.OrderLine, 0, len(applied)),
		Total:     decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	for i, line := range applied {
		current, err := s.repo.GetByID(ctx, line.Product.ID)
		switch {
		case err == nil:
			applied[i].Product = &current
			line.Product = &current
		case errors.Is(err, catalog.ErrNotFound):
			// Deleted after its stock was taken; the line's copy is all
			// that is left.
		default:
			return catalog.Order{}, fmt.Errorf("repo get %d: %w", line.Product.ID, err)
		}

		order.Lines = append(order.Lines, catalog.OrderLine{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
		})
		order.Total = order.Total.Add(line.Subtotal())
	}
	return order, nil
}

// abort reverts the applied lines of a checkout that will not record an
// order and returns cause, joined with any restore failure.
func (s *Service) abort(ctx context.Context, report *ReconcileReport, cause error) error {
	s.logger.Error("checkout aborted",
		"applied_lines", len(report.Applied),
		"error", cause,
	)
	if len(report.Applied) == 0 {
		return cause
	}
	if err := s.reconciler.Revert(ctx, report); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// Order reports false, without error, when no order has the id.
func (s *Service) Order(ctx context.Context, id int64) (catalog.Order, bool, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return catalog.Order{}, false, nil
	}
	if err != nil {
		return catalog.Order{}, false, fmt.Errorf("repo get order %d: %w", id, err)
	}
	return order, true, nil
}

func (s *Service) publish(ctx context.Context, event catalog.ProductEvent) {
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish "+event.EventType+" event failed",
			"product_id", event.ProductID,
			"error", err,
		)
	}
}
