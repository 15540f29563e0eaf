// Package memory holds the in-memory repositories. State lives for the
// process lifetime only and is rebuilt by Seed on startup; every exported
// operation takes the repo lock so each call is atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crateside/vinylvault/internal/domain"
)

type VinylRepo struct {
	mu     sync.RWMutex
	vinyls map[string]domain.Vinyl
}

func NewVinylRepo() *VinylRepo {
	return &VinylRepo{vinyls: map[string]domain.Vinyl{}}
}

func (r *VinylRepo) ListAll(ctx context.Context) ([]domain.Vinyl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Vinyl, 0, len(r.vinyls))
	for _, v := range r.vinyls {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *VinylRepo) Get(ctx context.Context, id string) (*domain.Vinyl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vinyls[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *VinylRepo) Create(ctx context.Context, in domain.VinylInput) (*domain.Vinyl, error) {
	now := time.Now()
	v := domain.Vinyl{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       domain.StatusActive,
		Quantity:     1,
		Marketplaces: []domain.Marketplace{},
	}
	applyInput(&v, in)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vinyls[v.ID] = v
	return &v, nil
}

func (r *VinylRepo) Update(ctx context.Context, id string, in domain.VinylInput) (*domain.Vinyl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vinyls[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	applyInput(&v, in)
	v.UpdatedAt = time.Now()
	r.vinyls[id] = v
	return &v, nil
}

func (r *VinylRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vinyls[id]; !ok {
		return false, nil
	}
	delete(r.vinyls, id)
	return true, nil
}

func (r *VinylRepo) MarkSold(ctx context.Context, id string) (*domain.Vinyl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vinyls[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if v.Quantity <= 1 {
		v.Quantity = 0
		v.Status = domain.StatusSold
	} else {
		v.Quantity--
	}
	v.UpdatedAt = time.Now()
	r.vinyls[id] = v
	return &v, nil
}

func (r *VinylRepo) UpdateOnlineSettings(ctx context.Context, id string, s domain.OnlineSettings) (*domain.Vinyl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vinyls[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.OnlineSettings = &s
	v.UpdatedAt = time.Now()
	r.vinyls[id] = v
	return &v, nil
}

// applyInput overlays the provided fields. Keys present in the input replace
// the prior value wholesale; nested online settings are not deep-merged.
func applyInput(v *domain.Vinyl, in domain.VinylInput) {
	if in.Artist != nil {
		v.Artist = *in.Artist
	}
	if in.ReleaseTitle != nil {
		v.ReleaseTitle = *in.ReleaseTitle
	}
	if in.Label != nil {
		v.Label = *in.Label
	}
	if in.CatalogNumber != nil {
		v.CatalogNumber = *in.CatalogNumber
	}
	if in.Format != nil {
		v.Format = *in.Format
	}
	if in.CountryOfRelease != nil {
		v.CountryOfRelease = *in.CountryOfRelease
	}
	if in.YearOfRelease != nil {
		v.YearOfRelease = *in.YearOfRelease
	}
	if in.EditionNotes != nil {
		v.EditionNotes = *in.EditionNotes
	}
	if in.MatrixRunoutSideA != nil {
		v.MatrixRunoutSideA = *in.MatrixRunoutSideA
	}
	if in.MatrixRunoutSideB != nil {
		v.MatrixRunoutSideB = *in.MatrixRunoutSideB
	}
	if in.AdditionalRunoutMarkings != nil {
		v.AdditionalRunoutMarkings = *in.AdditionalRunoutMarkings
	}
	if in.MasteringIdentifiersPresent != nil {
		v.MasteringIdentifiersPresent = *in.MasteringIdentifiersPresent
	}
	if in.MediaGrade != nil {
		v.MediaGrade = *in.MediaGrade
	}
	if in.SleeveGrade != nil {
		v.SleeveGrade = *in.SleeveGrade
	}
	if in.PlayTested != nil {
		v.PlayTested = *in.PlayTested
	}
	if in.PlaybackIssues != nil {
		v.PlaybackIssues = *in.PlaybackIssues
	}
	if in.PlaybackNotes != nil {
		v.PlaybackNotes = *in.PlaybackNotes
	}
	if in.WarpPresent != nil {
		v.WarpPresent = *in.WarpPresent
	}
	if in.WarpAffectsPlay != nil {
		v.WarpAffectsPlay = *in.WarpAffectsPlay
	}
	if in.PressingDefectsPresent != nil {
		v.PressingDefectsPresent = *in.PressingDefectsPresent
	}
	if in.OriginalInnerSleeveIncluded != nil {
		v.OriginalInnerSleeveIncluded = *in.OriginalInnerSleeveIncluded
	}
	if in.OriginalInsertsIncluded != nil {
		v.OriginalInsertsIncluded = *in.OriginalInsertsIncluded
	}
	if in.SeamSplitsPresent != nil {
		v.SeamSplitsPresent = *in.SeamSplitsPresent
	}
	if in.WritingOrStickersOnSleeveOrLabels != nil {
		v.WritingOrStickersOnSleeveOrLabels = *in.WritingOrStickersOnSleeveOrLabels
	}
	if in.SealedCopy != nil {
		v.SealedCopy = *in.SealedCopy
	}
	if in.ShrinkOriginal != nil {
		v.ShrinkOriginal = *in.ShrinkOriginal
	}
	if in.SellerNotes != nil {
		v.SellerNotes = *in.SellerNotes
	}
	if in.Price != nil {
		v.Price = *in.Price
	}
	if in.InStore != nil {
		v.InStore = *in.InStore
	}
	if in.Online != nil {
		v.Online = *in.Online
	}
	if in.HoldForCustomer != nil {
		v.HoldForCustomer = *in.HoldForCustomer
	}
	if in.Network != nil {
		v.Network = *in.Network
	}
	if in.Quantity != nil {
		v.Quantity = *in.Quantity
	}
	if in.Location != nil {
		v.Location = *in.Location
	}
	if in.Marketplaces != nil {
		v.Marketplaces = *in.Marketplaces
	}
	if in.ImagePath != nil {
		v.ImagePath = *in.ImagePath
	}
	if in.Status != nil {
		v.Status = *in.Status
	}
	if in.OnlineSettings != nil {
		v.OnlineSettings = in.OnlineSettings
	}
}
