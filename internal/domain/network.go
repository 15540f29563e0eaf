package domain

import "time"

// Shop is a directory entry for a participating business. Seeded once,
// immutable afterwards.
type Shop struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// NetworkListing publishes one record to the cross-shop directory. VinylID is
// set only for listings that originate from this shop.
type NetworkListing struct {
	ID            string      `json:"id"`
	ShopID        string      `json:"shopId"`
	Artist        string      `json:"artist"`
	ReleaseTitle  string      `json:"releaseTitle"`
	Label         string      `json:"label,omitempty"`
	CatalogNumber string      `json:"catalogNumber,omitempty"`
	Format        VinylFormat `json:"format,omitempty"`
	Price         string      `json:"price,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	VinylID       string      `json:"vinylId,omitempty"`
}

type NetworkListingWithShop struct {
	NetworkListing
	Shop Shop `json:"shop"`
}

type Message struct {
	ID               string    `json:"id"`
	ThreadID         string    `json:"threadId"`
	ShopID           string    `json:"shopId"`
	NetworkListingID string    `json:"networkListingId"`
	Content          string    `json:"content"`
	IsFromMe         bool      `json:"isFromMe"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MessageThread holds the ordered, append-only conversation for one
// (shop, listing) pair. At most one thread exists per pair.
type MessageThread struct {
	ID               string    `json:"id"`
	ShopID           string    `json:"shopId"`
	NetworkListingID string    `json:"networkListingId"`
	Messages         []Message `json:"messages"`
}

// MessageInput is a validated send-message request. ThreadID is optional;
// when empty the thread for (ShopID, NetworkListingID) is used or created.
type MessageInput struct {
	ThreadID         string `json:"threadId"`
	ShopID           string `json:"shopId"`
	NetworkListingID string `json:"networkListingId"`
	Content          string `json:"content"`
}
