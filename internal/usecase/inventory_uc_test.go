package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crateside/vinylvault/internal/adapters/repo/memory"
	"github.com/crateside/vinylvault/internal/domain"
)

func newInventoryUC() (*InventoryUC, *memory.NetworkRepo, *memory.SalesRepo) {
	network := memory.NewNetworkRepo()
	sales := memory.NewSalesRepo()
	uc := &InventoryUC{
		Vinyls:  memory.NewVinylRepo(),
		Network: network,
		Sales:   sales,
		ShopID:  "my-shop",
	}
	return uc, network, sales
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestMarkSoldSynthesizesOrder(t *testing.T) {
	uc, _, sales := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Radiohead"),
		ReleaseTitle: strPtr("In Rainbows"),
		Price:        strPtr("$45.00"),
	})
	require.NoError(t, err)

	sold, err := uc.MarkSold(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, sold.Status)
	assert.Equal(t, 0, sold.Quantity)

	orders, err := sales.ListOrders(ctx, domain.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	o := orders[0]
	assert.Equal(t, domain.ChannelInStore, o.Channel)
	assert.Equal(t, 4500, o.TotalCents)
	require.Len(t, o.LineItems, 1)
	assert.Equal(t, v.ID, o.LineItems[0].VinylID)
	assert.Equal(t, 1, o.LineItems[0].Quantity)
	assert.Equal(t, 4500, o.LineItems[0].UnitPriceCents)
}

func TestMarkSoldOnlineChannel(t *testing.T) {
	uc, _, sales := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Boards of Canada"),
		ReleaseTitle: strPtr("Geogaddi"),
		Price:        strPtr("$38.00"),
		Online:       boolPtr(true),
		Marketplaces: &[]domain.Marketplace{domain.MarketplaceDiscogs, domain.MarketplaceEBay},
	})
	require.NoError(t, err)

	_, err = uc.MarkSold(ctx, v.ID)
	require.NoError(t, err)

	orders, err := sales.ListOrders(ctx, domain.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.ChannelOnline, orders[0].Channel)
	assert.Equal(t, string(domain.MarketplaceDiscogs), orders[0].Marketplace)
}

func TestMarkSoldWithoutPriceLeavesNoOrder(t *testing.T) {
	uc, _, sales := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Unknown Artist"),
		ReleaseTitle: strPtr("White Label"),
	})
	require.NoError(t, err)

	sold, err := uc.MarkSold(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSold, sold.Status)

	orders, err := sales.ListOrders(ctx, domain.SalesFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateWithNetworkPublishesListing(t *testing.T) {
	uc, network, _ := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Stereolab"),
		ReleaseTitle: strPtr("Dots and Loops"),
		Price:        strPtr("$42.00"),
		Network:      boolPtr(true),
	})
	require.NoError(t, err)

	l, err := network.FindListingByVinyl(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "my-shop", l.ShopID)
	assert.Equal(t, "Stereolab", l.Artist)
	assert.Equal(t, "$42.00", l.Price)
}

func TestDraftWithNetworkIsNotPublished(t *testing.T) {
	uc, network, _ := newInventoryUC()
	ctx := context.Background()

	draft := domain.StatusDraft
	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Broadcast"),
		ReleaseTitle: strPtr("Tender Buttons"),
		Network:      boolPtr(true),
		Status:       &draft,
	})
	require.NoError(t, err)

	_, err = network.FindListingByVinyl(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// promoting the draft publishes it
	active := domain.StatusActive
	_, err = uc.Update(ctx, v.ID, domain.VinylInput{Status: &active})
	require.NoError(t, err)

	_, err = network.FindListingByVinyl(ctx, v.ID)
	assert.NoError(t, err)
}

func TestSetNetworkPublication(t *testing.T) {
	uc, network, _ := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Kraftwerk"),
		ReleaseTitle: strPtr("Computer World"),
	})
	require.NoError(t, err)

	updated, err := uc.SetNetworkPublication(ctx, v.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Network)
	_, err = network.FindListingByVinyl(ctx, v.ID)
	require.NoError(t, err)

	updated, err = uc.SetNetworkPublication(ctx, v.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Network)
	_, err = network.FindListingByVinyl(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRemovesListing(t *testing.T) {
	uc, network, _ := newInventoryUC()
	ctx := context.Background()

	v, err := uc.Create(ctx, domain.VinylInput{
		Artist:       strPtr("Tortoise"),
		ReleaseTitle: strPtr("TNT"),
		Network:      boolPtr(true),
	})
	require.NoError(t, err)

	existed, err := uc.Delete(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = network.FindListingByVinyl(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
