package memory

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crateside/vinylvault/internal/domain"
)

// Seed populates a fresh set of repos with the demo state: the starting
// catalog, the shop directory, 100 simulated cross-shop listings, and 60
// sales orders spread over the last 30 days. A fixed-seed PRNG drives the
// simulated history so two fresh processes start from identical state apart
// from the clock anchor. Call once, before serving traffic.
func Seed(vinyls *VinylRepo, network *NetworkRepo, sales *SalesRepo) {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	seedCatalog(vinyls, now)
	shopIDs := seedShopDirectory(network)
	seedListings(network, shopIDs, rng, now)
	seedSalesHistory(sales, rng, now)
}

func seedCatalog(r *VinylRepo, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range seedVinyls {
		v.ID = uuid.NewString()
		// stagger creation times so newest-first ordering is stable
		v.CreatedAt = now.Add(time.Duration(i-len(seedVinyls)) * time.Minute)
		v.UpdatedAt = v.CreatedAt
		r.vinyls[v.ID] = v
	}
}

func seedShopDirectory(r *NetworkRepo) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(seedShops))
	for _, s := range seedShops {
		s.ID = uuid.NewString()
		r.shops = append(r.shops, s)
		r.shopByID[s.ID] = s
		ids = append(ids, s.ID)
	}
	return ids
}

func seedListings(r *NetworkRepo, shopIDs []string, rng *rand.Rand, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < 100; i++ {
		l := listingTemplates[i%len(listingTemplates)]
		l.ID = uuid.NewString()
		l.ShopID = shopIDs[i%len(shopIDs)]
		l.CreatedAt = now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour))))
		r.listings[l.ID] = l
	}
}

func seedSalesHistory(r *SalesRepo, rng *rand.Rand, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < 60; i++ {
		daysAgo := rng.Intn(30)
		hoursAgo := rng.Intn(24)
		minutesAgo := rng.Intn(60)
		secondsAgo := rng.Intn(60)
		soldAt := now.Add(-(time.Duration(daysAgo*24+hoursAgo)*time.Hour +
			time.Duration(minutesAgo)*time.Minute +
			time.Duration(secondsAgo)*time.Second))

		// weighted channels: 55% in store, 35% online, 10% network
		var channel domain.SalesChannel
		switch roll := rng.Float64(); {
		case roll < 0.55:
			channel = domain.ChannelInStore
		case roll < 0.9:
			channel = domain.ChannelOnline
		default:
			channel = domain.ChannelNetwork
		}

		in := domain.OrderInput{Channel: channel}
		if channel == domain.ChannelOnline {
			in.Marketplace = string(domain.Marketplaces[rng.Intn(len(domain.Marketplaces))])
		}
		if channel != domain.ChannelInStore {
			in.BuyerName = seedBuyerNames[rng.Intn(len(seedBuyerNames))]
			in.BuyerEmail = strings.ToLower(strings.ReplaceAll(in.BuyerName, " ", ".")) + "@email.com"
		}

		// 1-3 line items, weighted 60/30/10
		numItems := 1
		switch roll := rng.Float64(); {
		case roll < 0.6:
		case roll < 0.9:
			numItems = 2
		default:
			numItems = 3
		}
		for j := 0; j < numItems; j++ {
			tpl := listingTemplates[(i*3+j+rng.Intn(10))%len(listingTemplates)]
			qty := 1
			if rng.Float64() >= 0.85 {
				qty = 2
			}
			unitPrice := domain.ParsePriceCents(tpl.Price)
			if unitPrice == 0 {
				unitPrice = 3500
			}
			in.LineItems = append(in.LineItems, domain.OrderLineInput{
				Artist:         tpl.Artist,
				ReleaseTitle:   tpl.ReleaseTitle,
				Quantity:       qty,
				UnitPriceCents: unitPrice,
			})
		}

		o := r.buildOrder(in, soldAt)
		r.orders[o.ID] = o
	}
}
