package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/app"
	cartdomain "github.com/tair/storefront/internal/cart/domain"
	favoritedomain "github.com/tair/storefront/internal/favorite/domain"
	orderdomain "github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/internal/testutil"
	userdomain "github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "shopper", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"register"}, {"login"}, {"logout"}, {"browse"}, {"categories"},
		{"show"}, {"ask"},
		{"cart", "list"}, {"cart", "add"}, {"cart", "set"}, {"cart", "rm"},
		{"fav", "list"}, {"fav", "add"}, {"fav", "rm"},
		{"checkout"}, {"orders"}, {"profile"},
	}

	for _, path := range commands {
		t.Run(path[len(path)-1], func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	timeout := cmd.PersistentFlags().Lookup("timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, "10s", timeout.DefValue)

	browse, _, err := cmd.Find([]string{"browse"})
	require.NoError(t, err)
	assert.Equal(t, "All", browse.Flags().Lookup("category").DefValue)
	assert.Equal(t, "1", browse.Flags().Lookup("pages").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "", filepath.Join(t.TempDir(), "p.yaml"), "--format", "xml", "categories")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, GetExitCode(err))
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shopper.yaml")

	empty, err := LoadProfile(path)
	require.NoError(t, err)
	assert.False(t, empty.Session.Valid())

	profile := &Profile{
		API:     "http://shop.example",
		Email:   "ada@example.com",
		Session: storefront.Session{UserID: 4, Token: "abc"},
	}
	require.NoError(t, profile.Save(path))

	loaded, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)
}

func TestCommandsRequireLogin(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "shopper.yaml")

	for _, args := range [][]string{{"cart", "list"}, {"fav", "list"}, {"checkout"}, {"orders"}, {"profile"}} {
		_, err := run(t, "http://127.0.0.1:1", profile, args...)
		require.Error(t, err)
		assert.Equal(t, ExitUnauthorized, GetExitCode(err), "%v", args)
	}
}

func newServer(t *testing.T) string {
	t.Helper()

	upstream := testutil.NewCatalogUpstream(t, testutil.SampleCatalog(30))
	db := testutil.NewSQLiteDB(t,
		&userdomain.User{}, &cartdomain.CartItem{}, &favoritedomain.FavoriteItem{},
		&orderdomain.Order{}, &orderdomain.OrderItem{},
	)
	cfg := config.Config{
		JWTSecret:          "cli-test-secret",
		JWTTTL:             time.Hour,
		CatalogUpstreamURL: upstream.URL,
		CatalogTimeout:     5 * time.Second,
	}

	application, err := app.InitializeApplication(cfg, db, nil, nil, prometheus.NewRegistry())
	require.NoError(t, err)

	router := mux.NewRouter()
	application.RegisterRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server.URL
}

func run(t *testing.T, api, profile string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	full := []string{"--profile", profile}
	if api != "" {
		full = append(full, "--api", api)
	}
	cmd.SetArgs(append(full, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestShopperSession(t *testing.T) {
	api := newServer(t)
	profile := filepath.Join(t.TempDir(), "shopper.yaml")

	_, err := run(t, api, profile, "register", "--name", "Ada", "--email", "ada@example.com", "--password", "lovelace1")
	require.NoError(t, err)

	_, err = run(t, api, profile, "login", "--email", "ada@example.com", "--password", "lovelace1")
	require.NoError(t, err)

	saved, err := LoadProfile(profile)
	require.NoError(t, err)
	assert.True(t, saved.Session.Valid())
	assert.Equal(t, api, saved.API)

	// later commands find the API through the profile
	out, err := run(t, "", profile, "--format", "json", "browse", "--pages", "5", "--sort", "priceHigh")
	require.NoError(t, err)
	var browse browseResult
	require.NoError(t, json.Unmarshal([]byte(out), &browse))
	assert.Len(t, browse.Products, 30)
	assert.Equal(t, "exhausted", browse.State)
	assert.Equal(t, 30, browse.Products[0].ID)

	out, err = run(t, "", profile, "--format", "json", "browse", "-c", "jewelery", "-s", "item 1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &browse))
	require.Len(t, browse.Products, 2)
	assert.Equal(t, 10, browse.Products[0].ID)
	assert.Equal(t, 15, browse.Products[1].ID)

	_, err = run(t, "", profile, "cart", "add", "3", "-q", "2")
	require.NoError(t, err)

	_, err = run(t, "", profile, "cart", "set", "1", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, storefront.ErrValidation)

	out, err = run(t, "", profile, "--format", "json", "cart", "list")
	require.NoError(t, err)
	var cart cartView
	require.NoError(t, json.Unmarshal([]byte(out), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "7.98", cart.Total)

	_, err = run(t, "", profile, "fav", "add", "4")
	require.NoError(t, err)

	out, err = run(t, "", profile, "checkout", "--payment", "paypal")
	require.NoError(t, err)
	assert.Contains(t, out, "ORD-")
	assert.Contains(t, out, "7.98 USD")

	out, err = run(t, "", profile, "cart", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Your cart is empty")

	out, err = run(t, "", profile, "--format", "json", "orders")
	require.NoError(t, err)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	assert.Len(t, orders, 1)

	_, err = run(t, "", profile, "logout")
	require.NoError(t, err)
	_, err = run(t, "", profile, "orders")
	assert.Equal(t, ExitUnauthorized, GetExitCode(err))
}

func TestCatalogLookups(t *testing.T) {
	api := newServer(t)
	profile := filepath.Join(t.TempDir(), "shopper.yaml")

	out, err := run(t, api, profile, "show", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Item 05")
	assert.Contains(t, out, "jewelery")
	assert.Contains(t, out, "5.99")
	assert.Contains(t, out, "Description of item")

	out, err = run(t, api, profile, "--format", "json", "show", "12")
	require.NoError(t, err)
	var product storefront.Product
	require.NoError(t, json.Unmarshal([]byte(out), &product))
	assert.Equal(t, 12, product.ID)
	assert.Equal(t, "electronics", product.Category)

	_, err = run(t, api, profile, "show", "abc")
	assert.Equal(t, ExitUsage, GetExitCode(err))

	_, err = run(t, api, profile, "show", "999")
	assert.ErrorIs(t, err, storefront.ErrNotFound)

	// matched by category only
	out, err = run(t, api, profile, "--format", "json", "ask", "jewelery")
	require.NoError(t, err)
	var answer storefront.Answer
	require.NoError(t, json.Unmarshal([]byte(out), &answer))
	require.Len(t, answer.Matches, 6)
	for _, p := range answer.Matches {
		assert.Equal(t, "jewelery", p.Category)
	}

	// any word is enough: "item" occurs in every title
	out, err = run(t, api, profile, "ask", "gold", "item")
	require.NoError(t, err)
	assert.Contains(t, out, "I found 30 products matching your search")
	assert.Contains(t, out, "- Item 01 ($1.99)")
	assert.Contains(t, out, "...and more")

	out, err = run(t, api, profile, "ask", "telescope")
	require.NoError(t, err)
	assert.Contains(t, out, "I couldn't find any products")

	_, err = run(t, api, profile, "ask")
	require.Error(t, err)
}
