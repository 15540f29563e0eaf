package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/crateside/vinylvault/internal/domain"
)

// SalesUC fronts the append-only ledger and derives statistics from it.
type SalesUC struct {
	Orders domain.SalesRepo
}

func (uc *SalesUC) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.SalesOrder, error) {
	if len(in.LineItems) == 0 {
		return nil, errors.New("order needs at least one line item")
	}
	return uc.Orders.CreateOrder(ctx, in)
}

func (uc *SalesUC) ListOrders(ctx context.Context, f domain.SalesFilter) ([]domain.SalesOrder, error) {
	return uc.Orders.ListOrders(ctx, f)
}

func (uc *SalesUC) GetOrder(ctx context.Context, id string) (*domain.SalesOrder, error) {
	if id == "" {
		return nil, errors.New("empty id")
	}
	return uc.Orders.GetOrder(ctx, id)
}

func (uc *SalesUC) ListLineItems(ctx context.Context, f domain.SalesFilter) ([]domain.LineItemWithOrder, error) {
	return uc.Orders.ListLineItems(ctx, f)
}

// OrdersForRange returns the ledger window for a lookback range: the last N
// days for "7"/"30"/"90", everything on record for "all".
func (uc *SalesUC) OrdersForRange(ctx context.Context, r domain.StatsRange) ([]domain.SalesOrder, error) {
	var f domain.SalesFilter
	if r != domain.RangeAll {
		days := map[domain.StatsRange]int{domain.Range7: 7, domain.Range30: 30, domain.Range90: 90}[r]
		if days == 0 {
			days = 30
		}
		start := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		f.StartDate = &start
	}
	return uc.Orders.ListOrders(ctx, f)
}

// Stats recomputes the aggregate snapshot for the window on every call; the
// ledger is small and in memory, so there is no caching to invalidate.
func (uc *SalesUC) Stats(ctx context.Context, r domain.StatsRange) (*domain.SalesStats, error) {
	orders, err := uc.OrdersForRange(ctx, r)
	if err != nil {
		return nil, err
	}
	return ComputeStats(orders), nil
}
