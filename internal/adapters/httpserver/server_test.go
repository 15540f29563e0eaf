package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crateside/vinylvault/internal/adapters/repo/memory"
	"github.com/crateside/vinylvault/internal/domain"
	"github.com/crateside/vinylvault/internal/usecase"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	vinyls := memory.NewVinylRepo()
	network := memory.NewNetworkRepo()
	sales := memory.NewSalesRepo()
	memory.Seed(vinyls, network, sales)

	return New(
		&usecase.InventoryUC{Vinyls: vinyls, Network: network, Sales: sales, ShopID: "my-shop"},
		&usecase.NetworkUC{Network: network, Vinyls: vinyls, ShopID: "my-shop"},
		&usecase.SalesUC{Orders: sales},
	)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListVinyls(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/vinyls", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	vinyls := decodeBody[[]domain.Vinyl](t, rec)
	assert.Len(t, vinyls, 5)

	rec = doJSON(t, h, http.MethodGet, "/api/vinyls?inStore=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, v := range decodeBody[[]domain.Vinyl](t, rec) {
		assert.True(t, v.InStore)
	}
}

func TestCreateVinyl(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist":       "Spiritualized",
		"releaseTitle": "Ladies and Gentlemen",
		"price":        "$50.00",
		"quantity":     2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vinyl](t, rec)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, domain.StatusActive, v.Status)
	assert.Equal(t, 2, v.Quantity)

	// active records must carry artist and title
	rec = doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{"price": "$10.00"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// drafts may omit them
	rec = doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{"status": "draft"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateVinylRejectsBadEnums(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "X", "releaseTitle": "Y", "format": "Cassette",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "X", "releaseTitle": "Y", "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVinylLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "Slint", "releaseTitle": "Spiderland", "price": "$45.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vinyl](t, rec)

	rec = doJSON(t, h, http.MethodGet, "/api/vinyls/"+v.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/vinyls/"+v.ID, map[string]any{"price": "$55.00"})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeBody[domain.Vinyl](t, rec)
	assert.Equal(t, "$55.00", patched.Price)
	assert.Equal(t, "Slint", patched.Artist)

	rec = doJSON(t, h, http.MethodDelete, "/api/vinyls/"+v.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/vinyls/"+v.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVinylNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/vinyls/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Vinyl not found", body["error"])

	rec = doJSON(t, h, http.MethodDelete, "/api/vinyls/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkSoldEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "Low", "releaseTitle": "Things We Lost", "price": "$45.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vinyl](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/api/vinyls/"+v.ID+"/sold", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sold := decodeBody[domain.Vinyl](t, rec)
	assert.Equal(t, domain.StatusSold, sold.Status)
	assert.Equal(t, 0, sold.Quantity)

	// the sale landed in the ledger at 4500 cents
	rec = doJSON(t, h, http.MethodGet, "/api/sales/orders?search=Low", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody[[]domain.SalesOrder](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, 4500, orders[0].TotalCents)
}

func TestOnlineSettingsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "Suicide", "releaseTitle": "Suicide",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vinyl](t, rec)

	rec = doJSON(t, h, http.MethodPut, "/api/vinyls/"+v.ID+"/online-settings", map[string]any{
		"sku": "SU-001", "listingDescription": "first press",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Vinyl](t, rec)
	require.NotNil(t, updated.OnlineSettings)
	assert.Equal(t, "SU-001", updated.OnlineSettings.SKU)
}

func TestNetworkEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/network/shops", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	shops := decodeBody[[]domain.Shop](t, rec)
	assert.Len(t, shops, 10)

	rec = doJSON(t, h, http.MethodGet, "/api/network/listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listings := decodeBody[[]domain.NetworkListingWithShop](t, rec)
	require.Len(t, listings, 100)

	rec = doJSON(t, h, http.MethodGet, "/api/network/listings/"+listings[0].ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/network/listings/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublishAndUnpublish(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/vinyls", map[string]any{
		"artist": "Wipers", "releaseTitle": "Youth of America", "price": "$30.00",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vinyl](t, rec)

	rec = doJSON(t, h, http.MethodPost, "/api/network/listings", map[string]any{"vinylId": v.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	l := decodeBody[domain.NetworkListing](t, rec)
	assert.Equal(t, v.ID, l.VinylID)
	assert.Equal(t, "my-shop", l.ShopID)

	rec = doJSON(t, h, http.MethodGet, "/api/network/my-listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[[]domain.NetworkListing](t, rec)
	require.Len(t, mine, 1)

	rec = doJSON(t, h, http.MethodDelete, "/api/network/listings/"+l.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/network/my-listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]domain.NetworkListing](t, rec))
}

func TestMessagingEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/network/listings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listings := decodeBody[[]domain.NetworkListingWithShop](t, rec)
	require.NotEmpty(t, listings)
	shopID, listingID := listings[0].ShopID, listings[0].ID

	path := fmt.Sprintf("/api/network/messages/%s/%s", shopID, listingID)
	rec = doJSON(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	thread := decodeBody[domain.MessageThread](t, rec)
	assert.Len(t, thread.Messages, 2)

	rec = doJSON(t, h, http.MethodPost, "/api/network/messages", map[string]any{
		"shopId": shopID, "networkListingId": listingID, "content": "Is it still available?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	msg := decodeBody[domain.Message](t, rec)
	assert.Equal(t, thread.ID, msg.ThreadID)
	assert.True(t, msg.IsFromMe)

	rec = doJSON(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[domain.MessageThread](t, rec).Messages, 3)

	rec = doJSON(t, h, http.MethodPost, "/api/network/messages", map[string]any{
		"shopId": shopID, "networkListingId": listingID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrdersEndpoints(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/sales/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeBody[[]domain.SalesOrder](t, rec)
	require.Len(t, orders, 60)

	rec = doJSON(t, h, http.MethodGet, "/api/sales/orders/"+orders[0].ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/sales/orders/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/sales/orders?startDate=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/sales/orders", map[string]any{
		"channel": "inStore",
		"lineItems": []map[string]any{
			{"artist": "ESG", "releaseTitle": "Come Away", "quantity": 1, "unitPriceCents": 3200},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.SalesOrder](t, rec)
	assert.Equal(t, 3200, created.TotalCents)

	rec = doJSON(t, h, http.MethodPost, "/api/sales/orders", map[string]any{
		"channel": "carrier-pigeon",
		"lineItems": []map[string]any{
			{"artist": "A", "releaseTitle": "B", "quantity": 1, "unitPriceCents": 100},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLineItemsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/sales/line-items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]domain.LineItemWithOrder](t, rec)
	assert.NotEmpty(t, items)
	for _, it := range items {
		assert.Equal(t, it.Quantity*it.UnitPriceCents, it.LineTotalCents)
	}
}

func TestStatsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/sales/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[domain.SalesStats](t, rec)
	assert.Positive(t, stats.OrdersCount)

	rec = doJSON(t, h, http.MethodGet, "/api/sales/stats/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[domain.SalesStats](t, rec)
	assert.Equal(t, 60, all.OrdersCount)
	assert.GreaterOrEqual(t, all.OrdersCount, stats.OrdersCount)

	// unknown ranges fall back to the 30-day window
	rec = doJSON(t, h, http.MethodGet, "/api/sales/stats/9000", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSalesExport(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodGet, "/api/sales/export?range=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales_all.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodDelete, "/api/sales/orders", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = doJSON(t, h, http.MethodPut, "/api/vinyls", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
