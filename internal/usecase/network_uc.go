package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/crateside/vinylvault/internal/domain"
)

// NetworkUC serves the cross-shop directory and its messaging threads.
type NetworkUC struct {
	Network domain.NetworkRepo
	Vinyls  domain.VinylRepo
	ShopID  string
}

func (uc *NetworkUC) Shops(ctx context.Context) ([]domain.Shop, error) {
	return uc.Network.ListShops(ctx)
}

func (uc *NetworkUC) Listings(ctx context.Context) ([]domain.NetworkListingWithShop, error) {
	return uc.Network.ListListings(ctx)
}

func (uc *NetworkUC) Listing(ctx context.Context, id string) (*domain.NetworkListingWithShop, error) {
	if id == "" {
		return nil, errors.New("empty id")
	}
	return uc.Network.GetListing(ctx, id)
}

func (uc *NetworkUC) MyListings(ctx context.Context) ([]domain.NetworkListing, error) {
	return uc.Network.ListMine(ctx)
}

// Publish snapshots the record into a listing owned by this shop.
func (uc *NetworkUC) Publish(ctx context.Context, vinylID string) (*domain.NetworkListing, error) {
	v, err := uc.Vinyls.Get(ctx, vinylID)
	if err != nil {
		return nil, err
	}
	return uc.Network.CreateListing(ctx, listingFromVinyl(v, uc.ShopID))
}

func (uc *NetworkUC) Unpublish(ctx context.Context, listingID string) (bool, error) {
	return uc.Network.RemoveListing(ctx, listingID)
}

func (uc *NetworkUC) Thread(ctx context.Context, shopID, listingID string) (*domain.MessageThread, error) {
	return uc.Network.GetOrCreateThread(ctx, shopID, listingID)
}

// SendMessage appends to an existing thread when ThreadID is given, otherwise
// to the (possibly freshly created) thread for the shop/listing pair.
func (uc *NetworkUC) SendMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, errors.New("empty message content")
	}
	threadID := in.ThreadID
	if threadID == "" {
		t, err := uc.Network.GetOrCreateThread(ctx, in.ShopID, in.NetworkListingID)
		if err != nil {
			return nil, err
		}
		threadID = t.ID
	} else if _, err := uc.Network.GetThread(ctx, threadID); err != nil {
		return nil, err
	}
	return uc.Network.AppendMessage(ctx, threadID, in.Content)
}
