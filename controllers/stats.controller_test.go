package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackVisit(t *testing.T) {
	_, r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/track", gin.H{"type": "visit"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	stats := decodeStats(t, doJSON(t, r, http.MethodGet, "/api/stats", nil))
	assert.Equal(t, 1, stats.Visits)
	assert.Equal(t, 1, stats.History[todayKey()].Visits)
}

func TestTrackQuoteTwiceAccumulatesPerProduct(t *testing.T) {
	_, r, _ := newTestEnv(t)

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/track", gin.H{"type": "quote", "productName": "Parrilla X"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	stats := decodeStats(t, doJSON(t, r, http.MethodGet, "/api/stats", nil))
	assert.Equal(t, 2, stats.Quotes)
	assert.Equal(t, 2, stats.Products["Parrilla X"])
	assert.Equal(t, 2, stats.History[todayKey()].Quotes)
	assert.Equal(t, 2, stats.History[todayKey()].Products["Parrilla X"])
}

func TestTrackUnknownTypeIsANoOpButSucceeds(t *testing.T) {
	_, r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/track", gin.H{"type": "cualquiera"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	stats := decodeStats(t, doJSON(t, r, http.MethodGet, "/api/stats", nil))
	assert.Equal(t, 0, stats.Visits)
	assert.Equal(t, 0, stats.Quotes)
	assert.Equal(t, 0, stats.ContactAttempts)
	assert.Equal(t, 0, stats.SocialClicks)
}

func TestGetStatsGuaranteesProductsMap(t *testing.T) {
	ctrl, r, _ := newTestEnv(t)

	// Documento viejo sin el mapa de productos.
	stats := ctrl.Stats.Load()
	stats.Products = nil
	require.NoError(t, ctrl.Stats.Save(stats))

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	products, ok := body["products"].(map[string]any)
	require.True(t, ok, "products debe ser un objeto, no null")
	assert.Empty(t, products)
}
