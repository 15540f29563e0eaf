package usecase

import (
	"math"
	"sort"

	"github.com/crateside/vinylvault/internal/domain"
)

// ComputeStats aggregates a window of ledger orders: totals, a UTC-day
// revenue series, the top-10 artist ranking by line revenue, and per-channel
// counts. It only reads the orders it is handed.
func ComputeStats(orders []domain.SalesOrder) *domain.SalesStats {
	stats := &domain.SalesStats{
		OrdersCount:    len(orders),
		RevenueByDay:   []domain.DayRevenue{},
		TopArtists:     []domain.ArtistRevenue{},
		SalesByChannel: []domain.ChannelStats{},
	}

	dayRevenue := map[string]int{}
	artistRevenue := map[string]int{}
	channelAgg := map[domain.SalesChannel]*domain.ChannelStats{}

	for _, o := range orders {
		stats.TotalRevenue += o.TotalCents

		day := o.SoldAt.UTC().Format("2006-01-02")
		dayRevenue[day] += o.TotalCents

		ch, ok := channelAgg[o.Channel]
		if !ok {
			ch = &domain.ChannelStats{Channel: o.Channel}
			channelAgg[o.Channel] = ch
		}
		ch.Count++
		ch.Revenue += o.TotalCents

		for _, li := range o.LineItems {
			stats.UnitsSold += li.Quantity
			artistRevenue[li.Artist] += li.LineTotalCents
		}
	}

	if stats.OrdersCount > 0 {
		stats.AvgOrderValue = int(math.Round(float64(stats.TotalRevenue) / float64(stats.OrdersCount)))
	}

	for day, rev := range dayRevenue {
		stats.RevenueByDay = append(stats.RevenueByDay, domain.DayRevenue{Date: day, Revenue: rev})
	}
	sort.Slice(stats.RevenueByDay, func(i, j int) bool {
		return stats.RevenueByDay[i].Date < stats.RevenueByDay[j].Date
	})

	for artist, rev := range artistRevenue {
		stats.TopArtists = append(stats.TopArtists, domain.ArtistRevenue{Artist: artist, Revenue: rev})
	}
	sort.Slice(stats.TopArtists, func(i, j int) bool {
		if stats.TopArtists[i].Revenue == stats.TopArtists[j].Revenue {
			return stats.TopArtists[i].Artist < stats.TopArtists[j].Artist
		}
		return stats.TopArtists[i].Revenue > stats.TopArtists[j].Revenue
	})
	if len(stats.TopArtists) > 10 {
		stats.TopArtists = stats.TopArtists[:10]
	}

	for _, ch := range domain.SalesChannels {
		if agg, ok := channelAgg[ch]; ok {
			stats.SalesByChannel = append(stats.SalesByChannel, *agg)
		}
	}

	return stats
}
