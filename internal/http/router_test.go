package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/checkout"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	r := NewRouter(RouterCfg{
		Catalog:      catalog.Default(),
		Persister:    cart.NewMemoryPersister(),
		CookieSecret: []byte("test-secret"),
		Processor:    &checkout.SimulatedProcessor{Delay: time.Millisecond},
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func postForm(t *testing.T, client *http.Client, u string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(u, form)
	require.NoError(t, err)
	return resp
}

func cartSummary(t *testing.T, client *http.Client, base string) map[string]any {
	t.Helper()
	resp, err := client.Get(base + "/api/cart")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHomePageListsCollection(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, name := range []string{"Equinox Bloom", "Nocturne Tides", "Lumen Veil", "Cinder Atlas"} {
		assert.Contains(t, body, name)
	}
	assert.Contains(t, body, "Aurora Scarves")
}

func TestProductPage(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/products/equinox-bloom")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Equinox Bloom")
	assert.Contains(t, body, "$180.00")
	assert.Contains(t, body, "23 of 90 remaining")
}

func TestProductPageNotFound(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/products/no-such-scarf")
	require.NoError(t, err)
	readBody(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartAddUpdateRemoveFlow(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
		"qty":        {"2"},
	})
	readBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode) // after redirect to /cart

	sum := cartSummary(t, client, srv.URL)
	assert.EqualValues(t, 2, sum["count"])
	assert.EqualValues(t, 36000, sum["subtotal_cents"])
	assert.EqualValues(t, 0, sum["shipping_cents"])
	assert.EqualValues(t, 36000, sum["total_cents"])
	// adding opens the drawer
	assert.Equal(t, true, sum["is_open"])

	// same variant merges, different size is a new line
	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))
	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-large"},
	}))

	sum = cartSummary(t, client, srv.URL)
	assert.EqualValues(t, 4, sum["count"])
	assert.Len(t, sum["items"], 2)

	// absolute quantity update
	readBody(t, postForm(t, client, srv.URL+"/cart/items/update", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
		"qty":        {"1"},
	}))
	sum = cartSummary(t, client, srv.URL)
	assert.EqualValues(t, 2, sum["count"])

	// remove one line
	readBody(t, postForm(t, client, srv.URL+"/cart/items/remove", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-large"},
	}))
	sum = cartSummary(t, client, srv.URL)
	assert.EqualValues(t, 1, sum["count"])
	assert.EqualValues(t, 18000, sum["subtotal_cents"])
	assert.EqualValues(t, 1500, sum["shipping_cents"])

	// clear
	readBody(t, postForm(t, client, srv.URL+"/cart/clear", nil))
	sum = cartSummary(t, client, srv.URL)
	assert.EqualValues(t, 0, sum["count"])
}

func TestCartAddUnknownVariantFlashes(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"bogus"},
	})
	body := readBody(t, resp)

	assert.Contains(t, body, "Please choose a size.")
	assert.EqualValues(t, 0, cartSummary(t, client, srv.URL)["count"])
}

func TestDrawerEndpoints(t *testing.T) {
	srv, client := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/cart/open", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, true, cartSummary(t, client, srv.URL)["is_open"])

	req, err = http.NewRequest(http.MethodPost, srv.URL+"/cart/toggle", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, false, cartSummary(t, client, srv.URL)["is_open"])
}

func TestCartPageShowsFreeShippingNudge(t *testing.T) {
	srv, client := newTestServer(t)

	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))

	resp, err := client.Get(srv.URL + "/cart")
	require.NoError(t, err)
	body := readBody(t, resp)

	// $200.00 - $180.00
	assert.Contains(t, body, "Spend $20.00 more for free shipping.")
}

func TestCheckoutEmptyCartShowsEmptyView(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/checkout")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Your cart is empty")
}

func checkoutForm() url.Values {
	return url.Values{
		"email":       {"shopper@example.com"},
		"first_name":  {"Avery"},
		"last_name":   {"Lane"},
		"address":     {"12 Garden Row"},
		"city":        {"Portland"},
		"state":       {"OR"},
		"postal_code": {"97201"},
		"country":     {"US"},
		"phone":       {"+1 555 0100"},
		"card_number": {"4242424242424242"},
		"card_expiry": {"13/99"}, // format-only validation accepts this
		"card_cvc":    {"123"},
	}
}

func TestCheckoutSubmitConfirmsAndClearsCart(t *testing.T) {
	srv, client := newTestServer(t)

	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))

	resp := postForm(t, client, srv.URL+"/checkout", checkoutForm())
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode) // confirmation page after redirect
	assert.Contains(t, resp.Request.URL.Path, "/order-confirmation")
	assert.NotEmpty(t, resp.Request.URL.Query().Get("order"))
	assert.Contains(t, body, "Thank you for your order")

	assert.EqualValues(t, 0, cartSummary(t, client, srv.URL)["count"])
}

func TestCheckoutShowsTaxInclusiveSummary(t *testing.T) {
	srv, client := newTestServer(t)

	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))

	resp, err := client.Get(srv.URL + "/checkout")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "$180.00") // subtotal
	assert.Contains(t, body, "$15.00")  // shipping
	assert.Contains(t, body, "$14.40")  // 8% tax
	assert.Contains(t, body, "$209.40") // total
}

func TestCheckoutValidationFailureRerenders(t *testing.T) {
	srv, client := newTestServer(t)

	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))

	form := checkoutForm()
	form.Set("email", "not-an-email")
	form.Set("card_expiry", "12/2025")
	form.Set("first_name", "")

	resp := postForm(t, client, srv.URL+"/checkout", form)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Please enter a valid email address")
	assert.Contains(t, body, "Use MM/YY format")
	assert.Contains(t, body, "First name is required")
	// submitted values come back
	assert.Contains(t, body, "Lane")
	assert.Contains(t, body, "12 Garden Row")

	// nothing was charged, the cart is intact
	assert.EqualValues(t, 1, cartSummary(t, client, srv.URL)["count"])
}

func TestConfirmationWithoutOrderRedirectsHome(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/order-confirmation")
	require.NoError(t, err)
	readBody(t, resp)

	assert.Equal(t, "/", resp.Request.URL.Path)
}

func TestHealthz(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	srv, client := newTestServer(t)

	// generate a little traffic first
	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	readBody(t, resp)

	resp, err = client.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "http_requests_total")
}

func TestTamperedCartCookieGetsFreshCart(t *testing.T) {
	srv, client := newTestServer(t)

	readBody(t, postForm(t, client, srv.URL+"/cart/items", url.Values{
		"product_id": {"1"},
		"variant_id": {"1-small"},
	}))
	require.EqualValues(t, 1, cartSummary(t, client, srv.URL)["count"])

	// forge the cookie signature
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	for _, ck := range client.Jar.Cookies(u) {
		if strings.Contains(ck.Name, "cart") {
			ck.Value = "forged-id.Zm9yZ2Vk"
			client.Jar.SetCookies(u, []*http.Cookie{ck})
		}
	}

	assert.EqualValues(t, 0, cartSummary(t, client, srv.URL)["count"])
}
