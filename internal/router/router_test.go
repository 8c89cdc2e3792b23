package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"kart-store/internal/handler"
	"kart-store/internal/model"
	"kart-store/internal/repository"
	"kart-store/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires real repositories, services, and handlers behind
// the router, seeded with the sample catalogue.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(logger)
	couponRepo := repository.NewCouponRepository(logger)
	cartRepo := repository.NewCartRepository(logger)
	require.NoError(t, repository.Seed(context.Background(), productRepo, couponRepo, logger))

	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, logger), logger)
	couponHandler := handler.NewCouponHandler(service.NewCouponService(couponRepo, logger), logger)
	cartHandler := handler.NewCartHandler(service.NewCartService(cartRepo, productRepo, couponRepo, logger), logger)

	srv := httptest.NewServer(New(productHandler, couponHandler, cartHandler, logger))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, body string, out any) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		// Callers reuse the same destination across requests; clear it so
		// fields omitted from this response don't retain stale values.
		v := reflect.ValueOf(out).Elem()
		v.Set(reflect.Zero(v.Type()))
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CatalogueListing(t *testing.T) {
	srv := newTestServer(t)

	var products []model.Product
	resp := doJSON(t, srv, http.MethodGet, "/api/products", "", &products)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, products, 3)
	assert.Equal(t, "p1", products[0].ID)
}

func TestRouter_FullCartFlow(t *testing.T) {
	srv := newTestServer(t)

	// Open a cart
	var created service.CartView
	resp := doJSON(t, srv, http.MethodPost, "/api/carts", "", &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cartPath := "/api/carts/" + created.ID.String()

	// Put 10 units of p1 and 10 of p2 in the cart
	var view service.CartView
	resp = doJSON(t, srv, http.MethodPost, cartPath+"/items", `{"productId":"p1"}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, srv, http.MethodPut, cartPath+"/items/p1", `{"quantity":10}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, srv, http.MethodPost, cartPath+"/items", `{"productId":"p2"}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, srv, http.MethodPut, cartPath+"/items/p2", `{"quantity":10}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Tiered discounts only: 10% on p1, 15% on p2
	require.Len(t, view.Lines, 2)
	assert.InDelta(t, 300000, view.Summary.TotalBeforeDiscount, 1e-6)
	assert.InDelta(t, 260000, view.Summary.TotalAfterDiscount, 1e-6)
	assert.InDelta(t, 40000, view.Summary.TotalDiscount, 1e-6)

	// A 10% coupon applies on top of the item discounts
	resp = doJSON(t, srv, http.MethodPut, cartPath+"/coupon", `{"code":"PERCENT10"}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 234000, view.Summary.TotalAfterDiscount, 1e-6)
	assert.InDelta(t, 66000, view.Summary.TotalDiscount, 1e-6)

	// Clearing the coupon restores the item-only totals
	resp = doJSON(t, srv, http.MethodPut, cartPath+"/coupon", `{"code":""}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, view.Coupon)
	assert.InDelta(t, 260000, view.Summary.TotalAfterDiscount, 1e-6)

	// Quantity clamps to stock
	resp = doJSON(t, srv, http.MethodPut, cartPath+"/items/p1", `{"quantity":30}`, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 20, view.Lines[0].Quantity)

	// Remaining stock reflects cart contents
	var availability []service.ProductAvailability
	resp = doJSON(t, srv, http.MethodGet, cartPath+"/products", "", &availability)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, availability, 3)
	assert.Equal(t, 0, availability[0].RemainingStock)
	assert.Equal(t, 10, availability[1].RemainingStock)
	assert.Equal(t, 20, availability[2].RemainingStock)

	// Removing a line drops it from the view
	resp = doJSON(t, srv, http.MethodDelete, cartPath+"/items/p2", "", &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p1", view.Lines[0].Product.ID)
}

func TestRouter_AdminFlow(t *testing.T) {
	srv := newTestServer(t)

	// Add a product without an ID; the server assigns one
	var product model.Product
	body := `{"name":"Product 4","price":15000,"stock":8,"discounts":[{"quantity":5,"rate":0.05}]}`
	resp := doJSON(t, srv, http.MethodPost, "/api/products", body, &product)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, product.ID)

	// Update it, replacing the discount tiers wholesale
	body = `{"name":"Product 4","price":15000,"stock":8,"discounts":[]}`
	resp = doJSON(t, srv, http.MethodPut, "/api/products/"+product.ID, body, &product)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, product.Discounts)

	// Add a coupon and see it listed
	var coupon model.Coupon
	body = `{"name":"New Year","code":"NEWYEAR25","discountType":"percentage","discountValue":25}`
	resp = doJSON(t, srv, http.MethodPost, "/api/coupons", body, &coupon)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var coupons []model.Coupon
	resp = doJSON(t, srv, http.MethodGet, "/api/coupons", "", &coupons)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, coupons, 3)

	// Duplicate coupon codes are rejected
	resp = doJSON(t, srv, http.MethodPost, "/api/coupons", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
