package services

import (
	"context"
	"log/slog"
	"strings"

	"auroramart/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultSnapshotWindow = 10
	DefaultOrderSKUWindow = 25
	DefaultBasketCap      = 50
)

// BasketSignal gathers the SKUs a customer recently showed interest in: the
// live cart, then recent basket snapshots, then recent order lines. Sources
// are read newest first and a failing source is skipped.
type BasketSignal struct {
	baskets        repositories.BasketRepositoryInterface
	snapshotWindow int
	orderWindow    int
	cap            int
	logger         *slog.Logger
}

func NewBasketSignal(baskets repositories.BasketRepositoryInterface, cap int, logger *slog.Logger) *BasketSignal {
	if cap <= 0 {
		cap = DefaultBasketCap
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BasketSignal{
		baskets:        baskets,
		snapshotWindow: DefaultSnapshotWindow,
		orderWindow:    DefaultOrderSKUWindow,
		cap:            cap,
		logger:         logger,
	}
}

// Gather returns at most cap distinct SKUs, most recent first. SKUs are
// compared case-insensitively and keep their first-seen spelling.
func (b *BasketSignal) Gather(ctx context.Context, customerID uuid.UUID) []string {
	if customerID == uuid.Nil {
		return []string{}
	}

	collector := newSKUCollector(b.cap)

	if cart, err := b.baskets.CartSKUs(customerID); err != nil {
		b.warn(ctx, customerID, "cart", err)
	} else {
		collector.add(cart...)
	}

	if !collector.full() {
		snapshots, err := b.baskets.RecentSnapshots(customerID, b.snapshotWindow)
		if err != nil {
			b.warn(ctx, customerID, "snapshots", err)
		}
		for _, snapshot := range snapshots {
			collector.add(snapshot.Items...)
		}
	}

	if !collector.full() {
		if ordered, err := b.baskets.RecentOrderSKUs(customerID, b.orderWindow); err != nil {
			b.warn(ctx, customerID, "orders", err)
		} else {
			collector.add(ordered...)
		}
	}

	return collector.skus
}

func (b *BasketSignal) warn(ctx context.Context, customerID uuid.UUID, source string, err error) {
	b.logger.WarnContext(ctx, "basket signal source failed",
		slog.String("event_type", "basket_signal_failed"),
		slog.String("customer_id", customerID.String()),
		slog.String("source", source),
		slog.String("error", err.Error()),
	)
}

type skuCollector struct {
	cap  int
	seen map[string]struct{}
	skus []string
}

func newSKUCollector(cap int) *skuCollector {
	return &skuCollector{cap: cap, seen: make(map[string]struct{}), skus: []string{}}
}

func (c *skuCollector) add(skus ...string) {
	for _, sku := range skus {
		if c.full() {
			return
		}
		sku = strings.TrimSpace(sku)
		if sku == "" {
			continue
		}
		key := strings.ToUpper(sku)
		if _, dup := c.seen[key]; dup {
			continue
		}
		c.seen[key] = struct{}{}
		c.skus = append(c.skus, sku)
	}
}

func (c *skuCollector) full() bool {
	return len(c.skus) >= c.cap
}
