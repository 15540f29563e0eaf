package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type SalesChannel string

const (
	ChannelInStore SalesChannel = "inStore"
	ChannelOnline  SalesChannel = "online"
	ChannelNetwork SalesChannel = "network"
)

var SalesChannels = []SalesChannel{ChannelInStore, ChannelOnline, ChannelNetwork}

// SalesLineItem is one line of an order. LineTotalCents is fixed at creation
// as Quantity * UnitPriceCents and never recomputed.
type SalesLineItem struct {
	ID             string `json:"id"`
	OrderID        string `json:"orderId"`
	VinylID        string `json:"vinylId,omitempty"`
	Artist         string `json:"artist"`
	ReleaseTitle   string `json:"releaseTitle"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unitPriceCents"`
	LineTotalCents int    `json:"lineTotalCents"`
}

// SalesOrder is immutable once created. TotalCents equals the sum of its
// line items' LineTotalCents.
type SalesOrder struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	SoldAt      time.Time       `json:"soldAt"`
	Channel     SalesChannel    `json:"channel"`
	Marketplace string          `json:"marketplace,omitempty"`
	BuyerName   string          `json:"buyerName,omitempty"`
	BuyerEmail  string          `json:"buyerEmail,omitempty"`
	TotalCents  int             `json:"totalCents"`
	LineItems   []SalesLineItem `json:"lineItems"`
}

type LineItemWithOrder struct {
	SalesLineItem
	Order SalesOrder `json:"order"`
}

type OrderLineInput struct {
	VinylID        string `json:"vinylId"`
	Artist         string `json:"artist"`
	ReleaseTitle   string `json:"releaseTitle"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int    `json:"unitPriceCents"`
}

type OrderInput struct {
	Channel     SalesChannel     `json:"channel"`
	Marketplace string           `json:"marketplace"`
	BuyerName   string           `json:"buyerName"`
	BuyerEmail  string           `json:"buyerEmail"`
	LineItems   []OrderLineInput `json:"lineItems"`
}

// SalesFilter narrows order queries. Date boundaries are inclusive against
// SoldAt; Search matches order number, buyer name, or any line item's
// artist/title, case-insensitively.
type SalesFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

type StatsRange string

const (
	Range7   StatsRange = "7"
	Range30  StatsRange = "30"
	Range90  StatsRange = "90"
	RangeAll StatsRange = "all"
)

type DayRevenue struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
}

type ArtistRevenue struct {
	Artist  string `json:"artist"`
	Revenue int    `json:"revenue"`
}

type ChannelStats struct {
	Channel SalesChannel `json:"channel"`
	Count   int          `json:"count"`
	Revenue int          `json:"revenue"`
}

// SalesStats is derived from the ledger on every request; it is never stored.
type SalesStats struct {
	TotalRevenue   int             `json:"totalRevenue"`
	UnitsSold      int             `json:"unitsSold"`
	OrdersCount    int             `json:"ordersCount"`
	AvgOrderValue  int             `json:"avgOrderValue"`
	RevenueByDay   []DayRevenue    `json:"revenueByDay"`
	TopArtists     []ArtistRevenue `json:"topArtists"`
	SalesByChannel []ChannelStats  `json:"salesByChannel"`
}

// ParsePriceCents converts a display price such as "$45.00" to integer cents.
// Returns 0 when the string carries no parseable positive number.
func ParsePriceCents(price string) int {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int(math.Round(f * 100))
}
