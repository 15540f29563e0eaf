package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/crateside/vinylvault/internal/domain"
)

// InventoryUC drives the catalog lifecycle. It owns the two cross-store
// couplings the stores themselves stay out of: synthesizing a ledger order
// when a record is marked sold, and keeping the record's network flag in
// lockstep with its cross-shop listing.
type InventoryUC struct {
	Vinyls  domain.VinylRepo
	Network domain.NetworkRepo
	Sales   domain.SalesRepo
	ShopID  string
}

func (uc *InventoryUC) List(ctx context.Context) ([]domain.Vinyl, error) {
	return uc.Vinyls.ListAll(ctx)
}

func (uc *InventoryUC) Get(ctx context.Context, id string) (*domain.Vinyl, error) {
	if id == "" {
		return nil, errors.New("empty id")
	}
	return uc.Vinyls.Get(ctx, id)
}

func (uc *InventoryUC) Create(ctx context.Context, in domain.VinylInput) (*domain.Vinyl, error) {
	v, err := uc.Vinyls.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if v.Network && v.Status != domain.StatusDraft {
		if _, err := uc.Network.CreateListing(ctx, listingFromVinyl(v, uc.ShopID)); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (uc *InventoryUC) Update(ctx context.Context, id string, in domain.VinylInput) (*domain.Vinyl, error) {
	prev, err := uc.Vinyls.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := uc.Vinyls.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if err := uc.syncListing(ctx, prev, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *InventoryUC) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := uc.Vinyls.Delete(ctx, id)
	if err != nil || !existed {
		return existed, err
	}
	if err := uc.removeListingFor(ctx, id); err != nil {
		return true, err
	}
	return true, nil
}

// MarkSold cuts a single-line ledger order before the quantity transition,
// but only when the record has a parseable positive price and both artist
// and title set. A record without those still transitions; it just leaves
// no trace in the ledger.
func (uc *InventoryUC) MarkSold(ctx context.Context, id string) (*domain.Vinyl, error) {
	v, err := uc.Vinyls.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cents := domain.ParsePriceCents(v.Price); cents > 0 && v.Artist != "" && v.ReleaseTitle != "" {
		in := domain.OrderInput{
			Channel: domain.ChannelInStore,
			LineItems: []domain.OrderLineInput{{
				VinylID:        v.ID,
				Artist:         v.Artist,
				ReleaseTitle:   v.ReleaseTitle,
				Quantity:       1,
				UnitPriceCents: cents,
			}},
		}
		if v.Online {
			in.Channel = domain.ChannelOnline
			if len(v.Marketplaces) > 0 {
				in.Marketplace = string(v.Marketplaces[0])
			}
		}
		if _, err := uc.Sales.CreateOrder(ctx, in); err != nil {
			return nil, err
		}
	} else {
		log.Debug().Str("vinyl_id", id).Msg("mark sold without sale record")
	}
	return uc.Vinyls.MarkSold(ctx, id)
}

// SetNetworkPublication flips the record's network flag and creates or
// removes the matching cross-shop listing in one call, so the two stores
// cannot drift.
func (uc *InventoryUC) SetNetworkPublication(ctx context.Context, id string, desired bool) (*domain.Vinyl, error) {
	in := domain.VinylInput{Network: &desired}
	return uc.Update(ctx, id, in)
}

func (uc *InventoryUC) UpdateOnlineSettings(ctx context.Context, id string, s domain.OnlineSettings) (*domain.Vinyl, error) {
	if id == "" {
		return nil, errors.New("empty id")
	}
	return uc.Vinyls.UpdateOnlineSettings(ctx, id, s)
}

func (uc *InventoryUC) syncListing(ctx context.Context, prev, cur *domain.Vinyl) error {
	wasPublished := prev.Network && prev.Status != domain.StatusDraft
	wantPublished := cur.Network && cur.Status != domain.StatusDraft
	switch {
	case wantPublished && !wasPublished:
		_, err := uc.Network.CreateListing(ctx, listingFromVinyl(cur, uc.ShopID))
		return err
	case wasPublished && !wantPublished:
		return uc.removeListingFor(ctx, cur.ID)
	}
	return nil
}

func (uc *InventoryUC) removeListingFor(ctx context.Context, vinylID string) error {
	l, err := uc.Network.FindListingByVinyl(ctx, vinylID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = uc.Network.RemoveListing(ctx, l.ID)
	return err
}

// listingFromVinyl snapshots the record's descriptive fields into a listing
// owned by this shop. The snapshot is denormalized on purpose: later edits
// to the record do not retouch the listing.
func listingFromVinyl(v *domain.Vinyl, shopID string) domain.NetworkListing {
	return domain.NetworkListing{
		ShopID:        shopID,
		Artist:        v.Artist,
		ReleaseTitle:  v.ReleaseTitle,
		Label:         v.Label,
		CatalogNumber: v.CatalogNumber,
		Format:        v.Format,
		Price:         v.Price,
		VinylID:       v.ID,
	}
}
