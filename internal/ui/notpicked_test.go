package ui

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickupdeck/internal/api"
	"pickupdeck/internal/screen"
)

// loadedSellersView returns a NotPickedView whose initial fetch has completed.
func loadedSellersView(t *testing.T, fb *fakeBackend) *NotPickedView {
	t.Helper()
	v := NewNotPickedView(1, "Sam", fb)
	msgs := only[sellersLoadedMsg](collect(v.Init()))
	require.Len(t, msgs, 1)
	v.Update(msgs[0])
	return v
}

func TestNotPickedView_SuccessRendersTiles(t *testing.T) {
	fb := &fakeBackend{sellers: testSellers()}
	v := loadedSellersView(t, fb)

	assert.Equal(t, []string{"Sam"}, fb.sellerCalls)
	assert.Equal(t, screen.PhaseSuccess, v.State().Phase())
	out := v.View()
	assert.Contains(t, out, "Not picked: Sam")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "1 item")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "3 items")
}

func TestNotPickedView_EmptyList(t *testing.T) {
	v := loadedSellersView(t, &fakeBackend{sellers: []api.Seller{}})
	assert.Equal(t, screen.PhaseSuccess, v.State().Phase())
	assert.Contains(t, v.View(), "No sellers waiting for pickup")
	assert.NotContains(t, v.View(), sellersFailMessage)
}

func TestNotPickedView_SelectNavigatesToSellerProducts(t *testing.T) {
	v := loadedSellersView(t, &fakeBackend{sellers: testSellers()})

	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Route: SellerProductsRoute{
		DriverName: "Sam",
		SellerName: "Acme",
		Endpoint:   "/api/not-picked-products",
	}}, cmd())

	v.Update(keyMsg("down"))
	require.NotNil(t, v.SelectedSeller())
	assert.Equal(t, "Beta", v.SelectedSeller().SellerName)

	_, cmd = v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "Beta", nav.Route.(SellerProductsRoute).SellerName)
}

func TestNotPickedView_SelectWhileLoadingDoesNothing(t *testing.T) {
	v := NewNotPickedView(1, "Sam", &fakeBackend{sellers: testSellers()})
	v.Init()
	_, cmd := v.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Nil(t, v.Refresh(), "nothing to pull while the first load is running")
}

func TestNotPickedView_FailureIsLoggedAndRecoverable(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	fb := &fakeBackend{err: errBackend}
	v := loadedSellersView(t, fb)

	assert.Contains(t, v.View(), sellersFailMessage)
	assert.NotContains(t, v.View(), "Acme")
	assert.Contains(t, buf.String(), "error fetching pickup sellers for Sam")
	assert.Contains(t, buf.String(), errBackend.Error())

	// The list stays attached, so a refresh can recover from the error.
	fb.err = nil
	fb.sellers = testSellers()
	cmd := v.Refresh()
	require.NotNil(t, cmd)
	assert.False(t, v.State().Loading())
	assert.True(t, v.State().Refreshing())

	msgs := only[sellersLoadedMsg](collect(cmd))
	require.Len(t, msgs, 1)
	v.Update(msgs[0])
	assert.Equal(t, screen.PhaseSuccess, v.State().Phase())
	assert.False(t, v.State().Refreshing())
	assert.Contains(t, v.View(), "Acme")
}

func TestNotPickedView_SetRoute(t *testing.T) {
	fb := &fakeBackend{sellers: testSellers()}
	v := loadedSellersView(t, fb)

	cmd, ok := v.SetRoute(NotPickedRoute{DriverName: "Sam"})
	assert.True(t, ok)
	assert.Nil(t, cmd)

	cmd, ok = v.SetRoute(NotPickedRoute{DriverName: "Alex"})
	require.True(t, ok)
	assert.True(t, v.State().Loading())
	assert.Equal(t, NotPickedRoute{DriverName: "Alex"}, v.Route())

	msgs := only[sellersLoadedMsg](collect(cmd))
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"Sam", "Alex"}, fb.sellerCalls)

	_, ok = v.SetRoute(ProductRoute{OrderCode: "1"})
	assert.False(t, ok)
}
