package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crateside/vinylvault/internal/domain"
)

type SalesRepo struct {
	mu      sync.Mutex
	orders  map[string]domain.SalesOrder
	counter int
}

func NewSalesRepo() *SalesRepo {
	return &SalesRepo{orders: map[string]domain.SalesOrder{}, counter: 1000}
}

func (r *SalesRepo) CreateOrder(ctx context.Context, in domain.OrderInput) (*domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.buildOrder(in, time.Now())
	r.orders[o.ID] = o
	return &o, nil
}

// buildOrder computes line totals and the order total, stamps identifiers and
// the sale time. Caller holds the lock.
func (r *SalesRepo) buildOrder(in domain.OrderInput, soldAt time.Time) domain.SalesOrder {
	orderID := uuid.NewString()
	r.counter++
	total := 0
	items := make([]domain.SalesLineItem, 0, len(in.LineItems))
	for _, li := range in.LineItems {
		lineTotal := li.UnitPriceCents * li.Quantity
		items = append(items, domain.SalesLineItem{
			ID:             uuid.NewString(),
			OrderID:        orderID,
			VinylID:        li.VinylID,
			Artist:         li.Artist,
			ReleaseTitle:   li.ReleaseTitle,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents,
			LineTotalCents: lineTotal,
		})
		total += lineTotal
	}
	return domain.SalesOrder{
		ID:          orderID,
		OrderNumber: fmt.Sprintf("ORD-%05d", r.counter),
		SoldAt:      soldAt,
		Channel:     in.Channel,
		Marketplace: in.Marketplace,
		BuyerName:   in.BuyerName,
		BuyerEmail:  in.BuyerEmail,
		TotalCents:  total,
		LineItems:   items,
	}
}

func (r *SalesRepo) ListOrders(ctx context.Context, f domain.SalesFilter) ([]domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.SalesOrder{}
	for _, o := range r.orders {
		if f.StartDate != nil && o.SoldAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && o.SoldAt.After(*f.EndDate) {
			continue
		}
		if f.Search != "" && !orderMatches(o, f.Search) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldAt.After(out[j].SoldAt) })
	return out, nil
}

func (r *SalesRepo) GetOrder(ctx context.Context, id string) (*domain.SalesOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *SalesRepo) ListLineItems(ctx context.Context, f domain.SalesFilter) ([]domain.LineItemWithOrder, error) {
	orders, err := r.ListOrders(ctx, f)
	if err != nil {
		return nil, err
	}
	items := []domain.LineItemWithOrder{}
	for _, o := range orders {
		for _, li := range o.LineItems {
			items = append(items, domain.LineItemWithOrder{SalesLineItem: li, Order: o})
		}
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		kept := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Artist), search) ||
				strings.Contains(strings.ToLower(it.ReleaseTitle), search) ||
				strings.Contains(strings.ToLower(it.Order.OrderNumber), search) {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	return items, nil
}

func orderMatches(o domain.SalesOrder, search string) bool {
	s := strings.ToLower(search)
	if strings.Contains(strings.ToLower(o.OrderNumber), s) {
		return true
	}
	if o.BuyerName != "" && strings.Contains(strings.ToLower(o.BuyerName), s) {
		return true
	}
	for _, li := range o.LineItems {
		if strings.Contains(strings.ToLower(li.Artist), s) || strings.Contains(strings.ToLower(li.ReleaseTitle), s) {
			return true
		}
	}
	return false
}
