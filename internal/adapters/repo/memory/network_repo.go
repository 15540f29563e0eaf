package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crateside/vinylvault/internal/domain"
)

type NetworkRepo struct {
	mu       sync.RWMutex
	shops    []domain.Shop
	shopByID map[string]domain.Shop
	listings map[string]domain.NetworkListing
	threads  map[string]domain.MessageThread
}

func NewNetworkRepo() *NetworkRepo {
	return &NetworkRepo{
		shopByID: map[string]domain.Shop{},
		listings: map[string]domain.NetworkListing{},
		threads:  map[string]domain.MessageThread{},
	}
}

func (r *NetworkRepo) ListShops(ctx context.Context) ([]domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Shop, len(r.shops))
	copy(out, r.shops)
	return out, nil
}

func (r *NetworkRepo) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shopByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *NetworkRepo) ListListings(ctx context.Context) ([]domain.NetworkListingWithShop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.NetworkListingWithShop, 0, len(r.listings))
	for _, l := range r.listings {
		shop, ok := r.shopByID[l.ShopID]
		if !ok {
			// dangling shop reference: skip the listing rather than fail the read
			continue
		}
		out = append(out, domain.NetworkListingWithShop{NetworkListing: l, Shop: shop})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NetworkRepo) GetListing(ctx context.Context, id string) (*domain.NetworkListingWithShop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	shop, ok := r.shopByID[l.ShopID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.NetworkListingWithShop{NetworkListing: l, Shop: shop}, nil
}

func (r *NetworkRepo) ListMine(ctx context.Context) ([]domain.NetworkListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.NetworkListing{}
	for _, l := range r.listings {
		if l.VinylID != "" {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NetworkRepo) CreateListing(ctx context.Context, l domain.NetworkListing) (*domain.NetworkListing, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ID] = l
	return &l, nil
}

func (r *NetworkRepo) RemoveListing(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return false, nil
	}
	delete(r.listings, id)
	return true, nil
}

func (r *NetworkRepo) FindListingByVinyl(ctx context.Context, vinylID string) (*domain.NetworkListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listings {
		if l.VinylID == vinylID {
			out := l
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *NetworkRepo) GetThread(ctx context.Context, threadID string) (*domain.MessageThread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.threads[threadID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneThread(t), nil
}

func (r *NetworkRepo) GetOrCreateThread(ctx context.Context, shopID, listingID string) (*domain.MessageThread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.threads {
		if t.ShopID == shopID && t.NetworkListingID == listingID {
			return cloneThread(t), nil
		}
	}

	// First contact for this pair: open the thread with a simulated prior
	// exchange so the conversation view is never empty.
	threadID := uuid.NewString()
	title := "vinyl"
	if l, ok := r.listings[listingID]; ok && l.ReleaseTitle != "" {
		title = l.ReleaseTitle
	}
	now := time.Now()
	t := domain.MessageThread{
		ID:               threadID,
		ShopID:           shopID,
		NetworkListingID: listingID,
		Messages: []domain.Message{
			{
				ID:               uuid.NewString(),
				ThreadID:         threadID,
				ShopID:           shopID,
				NetworkListingID: listingID,
				Content:          fmt.Sprintf("Hi! I'm interested in your %s. Is it still available?", title),
				IsFromMe:         true,
				CreatedAt:        now.Add(-2 * time.Hour),
			},
			{
				ID:               uuid.NewString(),
				ThreadID:         threadID,
				ShopID:           shopID,
				NetworkListingID: listingID,
				Content:          "Hello! Yes, it's still available. Would you like more details or photos?",
				IsFromMe:         false,
				CreatedAt:        now.Add(-90 * time.Minute),
			},
		},
	}
	r.threads[threadID] = t
	return cloneThread(t), nil
}

func (r *NetworkRepo) AppendMessage(ctx context.Context, threadID, content string) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.threads[threadID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	msg := domain.Message{
		ID:               uuid.NewString(),
		ThreadID:         t.ID,
		ShopID:           t.ShopID,
		NetworkListingID: t.NetworkListingID,
		Content:          content,
		IsFromMe:         true,
		CreatedAt:        time.Now(),
	}
	t.Messages = append(t.Messages, msg)
	r.threads[threadID] = t
	return &msg, nil
}

func cloneThread(t domain.MessageThread) *domain.MessageThread {
	msgs := make([]domain.Message, len(t.Messages))
	copy(msgs, t.Messages)
	t.Messages = msgs
	return &t
}
