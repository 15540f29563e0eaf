package domain

import "context"

// VinylRepo owns the catalog. Only the documented operations touch its maps.
type VinylRepo interface {
	ListAll(ctx context.Context) ([]Vinyl, error)
	Get(ctx context.Context, id string) (*Vinyl, error)
	Create(ctx context.Context, in VinylInput) (*Vinyl, error)
	Update(ctx context.Context, id string, in VinylInput) (*Vinyl, error)
	Delete(ctx context.Context, id string) (bool, error)
	// MarkSold decrements quantity, or zeroes it and flips status to sold when
	// quantity is already 1 or less. Order synthesis is the caller's job.
	MarkSold(ctx context.Context, id string) (*Vinyl, error)
	UpdateOnlineSettings(ctx context.Context, id string, s OnlineSettings) (*Vinyl, error)
}

// NetworkRepo owns the shop directory, cross-shop listings, and message
// threads attached to listings.
type NetworkRepo interface {
	ListShops(ctx context.Context) ([]Shop, error)
	GetShop(ctx context.Context, id string) (*Shop, error)
	// ListListings joins each listing with its owning shop, newest first.
	// Listings whose shop reference dangles are skipped, not errored.
	ListListings(ctx context.Context) ([]NetworkListingWithShop, error)
	GetListing(ctx context.Context, id string) (*NetworkListingWithShop, error)
	// ListMine returns only listings carrying a local vinyl back-reference.
	ListMine(ctx context.Context) ([]NetworkListing, error)
	CreateListing(ctx context.Context, l NetworkListing) (*NetworkListing, error)
	RemoveListing(ctx context.Context, id string) (bool, error)
	FindListingByVinyl(ctx context.Context, vinylID string) (*NetworkListing, error)

	GetThread(ctx context.Context, threadID string) (*MessageThread, error)
	GetOrCreateThread(ctx context.Context, shopID, listingID string) (*MessageThread, error)
	AppendMessage(ctx context.Context, threadID, content string) (*Message, error)
}

// SalesRepo is the append-only ledger. Orders are never mutated or deleted.
type SalesRepo interface {
	CreateOrder(ctx context.Context, in OrderInput) (*SalesOrder, error)
	ListOrders(ctx context.Context, f SalesFilter) ([]SalesOrder, error)
	GetOrder(ctx context.Context, id string) (*SalesOrder, error)
	ListLineItems(ctx context.Context, f SalesFilter) ([]LineItemWithOrder, error)
}
