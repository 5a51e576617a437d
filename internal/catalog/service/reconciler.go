package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"product-catalog/internal/catalog"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	stockResultApplied  = "applied"
	stockResultFailed   = "failed"
	stockResultReverted = "reverted"
)

type StockUpdater interface {
	UpdateStock(ctx context.Context, id int64, quantity int) error
	RestoreStock(ctx context.Context, id int64, quantity int) error
}

type LineFailure struct {
	Line catalog.CartLine
	Err  error
}

// ReconcileReport sorts the lines of one run. Reverted lines were applied
// and then given back because the checkout did not complete.
type ReconcileReport struct {
	Applied  []catalog.CartLine
	Failed   []LineFailure
	Reverted []catalog.CartLine
}

func (r ReconcileReport) Complete() bool {
	return len(r.Failed) == 0
}

// StockReconciler decrements persisted stock once per cart line.
type StockReconciler struct {
	repo      StockUpdater
	publisher Publisher
	logger    *slog.Logger
	lines     *prometheus.CounterVec
}

func NewStockReconciler(repo StockUpdater, publisher Publisher, logger *slog.Logger, lines *prometheus.CounterVec) *StockReconciler {
	return &StockReconciler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		lines:     lines,
	}
}

// Reconcile calls UpdateStock exactly once for every line. A line whose
// product is gone or short of stock is recorded in the report and skipped;
// any other repository error stops the run and is returned with the report
// so far.
func (r *StockReconciler) Reconcile(ctx context.Context, cart catalog.Cart) (ReconcileReport, error) {
	var report ReconcileReport

	for _, line := range cart.Lines() {
		if line.Product == nil {
			r.fail(&report, line, catalog.ErrNotFound)
			continue
		}

		err := r.repo.UpdateStock(ctx, line.Product.ID, line.Quantity)
		switch {
		case err == nil:
			report.Applied = append(report.Applied, line)
			r.lines.WithLabelValues(stockResultApplied).Inc()
			r.publish(ctx, catalog.EventStockReconciled, line)
		case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrInsufficientStock):
			r.fail(&report, line, err)
		default:
			return report, fmt.Errorf("repo update stock %d: %w", line.Product.ID, err)
		}
	}

	return report, nil
}

// Revert gives back the stock the report's applied lines took and moves
// them to Reverted. Every line is attempted even after a failure; lines
// that could not be restored stay in Applied. The caller's cancellation is
// ignored.
func (r *StockReconciler) Revert(ctx context.Context, report *ReconcileReport) error {
	ctx = context.WithoutCancel(ctx)

	var (
		kept []catalog.CartLine
		errs []error
	)
	for _, line := range report.Applied {
		if err := r.repo.RestoreStock(ctx, line.Product.ID, line.Quantity); err != nil {
			r.logger.Error("stock not restored",
				"product_id", line.Product.ID,
				"quantity", line.Quantity,
				"error", err,
			)
			kept = append(kept, line)
			errs = append(errs, fmt.Errorf("repo restore stock %d: %w", line.Product.ID, err))
			continue
		}
		report.Reverted = append(report.Reverted, line)
		r.lines.WithLabelValues(stockResultReverted).Inc()
		r.publish(ctx, catalog.EventStockRestored, line)
	}
	report.Applied = kept

	return errors.Join(errs...)
}

func (r *StockReconciler) fail(report *ReconcileReport, line catalog.CartLine, err error) {
	var productID int64
	if line.Product != nil {
		productID = line.Product.ID
	}
	r.logger.Warn("cart line not reconciled",
		"product_id", productID,
		"quantity", line.Quantity,
		"error", err,
	)
	report.Failed = append(report.Failed, LineFailure{Line: line, Err: err})
	r.lines.WithLabelValues(stockResultFailed).Inc()
}

func (r *StockReconciler) publish(ctx context.Context, eventType string, line catalog.CartLine) {
	if err := r.publisher.Publish(ctx, catalog.ProductEvent{
		EventType: eventType,
		ProductID: line.Product.ID,
		Name:      line.Product.Name,
		Quantity:  line.Quantity,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		r.logger.Error("publish "+eventType+" event failed",
			"product_id", line.Product.ID,
			"error", err,
		)
	}
}
