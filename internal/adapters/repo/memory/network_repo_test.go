package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crateside/vinylvault/internal/domain"
)

func seededNetwork(t *testing.T) *NetworkRepo {
	t.Helper()
	repo := NewNetworkRepo()
	Seed(NewVinylRepo(), repo, NewSalesRepo())
	return repo
}

func TestListShops(t *testing.T) {
	repo := seededNetwork(t)

	shops, err := repo.ListShops(context.Background())
	require.NoError(t, err)
	assert.Len(t, shops, 10)

	got, err := repo.GetShop(context.Background(), shops[0].ID)
	require.NoError(t, err)
	assert.Equal(t, shops[0].Name, got.Name)

	_, err = repo.GetShop(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListListingsJoinsShops(t *testing.T) {
	repo := seededNetwork(t)

	listings, err := repo.ListListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 100)
	for _, l := range listings {
		assert.NotEmpty(t, l.Shop.Name)
		assert.Equal(t, l.ShopID, l.Shop.ID)
	}
}

func TestListListingsSkipsDanglingShop(t *testing.T) {
	repo := NewNetworkRepo()
	ctx := context.Background()

	_, err := repo.CreateListing(ctx, domain.NetworkListing{
		ShopID:       "ghost-shop",
		Artist:       "Can",
		ReleaseTitle: "Ege Bamyasi",
	})
	require.NoError(t, err)

	listings, err := repo.ListListings(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCreateAndRemoveListing(t *testing.T) {
	repo := seededNetwork(t)
	ctx := context.Background()

	l, err := repo.CreateListing(ctx, domain.NetworkListing{
		ShopID:       "my-shop",
		Artist:       "Sonic Youth",
		ReleaseTitle: "Daydream Nation",
		VinylID:      "v-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, l.ID)
	assert.False(t, l.CreatedAt.IsZero())

	mine, err := repo.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, l.ID, mine[0].ID)

	found, err := repo.FindListingByVinyl(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, l.ID, found.ID)

	removed, err := repo.RemoveListing(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	mine, err = repo.ListMine(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = repo.FindListingByVinyl(ctx, "v-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	removed, err = repo.RemoveListing(ctx, l.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetOrCreateThreadIdempotent(t *testing.T) {
	repo := seededNetwork(t)
	ctx := context.Background()

	listings, err := repo.ListListings(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	shopID, listingID := listings[0].ShopID, listings[0].ID

	first, err := repo.GetOrCreateThread(ctx, shopID, listingID)
	require.NoError(t, err)
	require.Len(t, first.Messages, 2)
	assert.True(t, first.Messages[0].IsFromMe)
	assert.False(t, first.Messages[1].IsFromMe)

	again, err := repo.GetOrCreateThread(ctx, shopID, listingID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.GreaterOrEqual(t, len(again.Messages), len(first.Messages))
}

func TestAppendMessage(t *testing.T) {
	repo := seededNetwork(t)
	ctx := context.Background()

	listings, err := repo.ListListings(ctx)
	require.NoError(t, err)
	thread, err := repo.GetOrCreateThread(ctx, listings[0].ShopID, listings[0].ID)
	require.NoError(t, err)

	msg, err := repo.AppendMessage(ctx, thread.ID, "Still available?")
	require.NoError(t, err)
	assert.Equal(t, thread.ID, msg.ThreadID)
	assert.True(t, msg.IsFromMe)
	assert.Equal(t, "Still available?", msg.Content)

	reloaded, err := repo.GetThread(ctx, thread.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Messages, 3)

	_, err = repo.AppendMessage(ctx, "nope", "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetThread(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
