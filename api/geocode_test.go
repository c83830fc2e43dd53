package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeNominatim(t *testing.T, rows []gin.H) *Geocoder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/search", func(c *gin.Context) {
		assert.Equal(t, "json", c.Query("format"))
		assert.NotEmpty(t, c.Query("q"))
		c.JSON(http.StatusOK, rows)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	g := NewGeocoder()
	g.BaseURL = srv.URL + "/search"
	return g
}

func TestGeocodeLookup(t *testing.T) {
	g := fakeNominatim(t, []gin.H{{"lat": "13.7563", "lon": "100.5018"}})

	ll := g.Lookup(context.Background(), "ถนนข้าวสาร กรุงเทพ")
	require.NotNil(t, ll)
	assert.InDelta(t, 13.7563, ll.Lat, 1e-9)
	assert.InDelta(t, 100.5018, ll.Lng, 1e-9)
}

func TestGeocodeNoResultFallsBack(t *testing.T) {
	g := fakeNominatim(t, []gin.H{})

	assert.Nil(t, g.Lookup(context.Background(), "ที่อยู่มั่ว ๆ"))

	// หาไม่เจอ → ใช้พิกัดที่ผู้ใช้ปักหมุดมา
	fb := &LatLng{Lat: 1, Lng: 2}
	assert.Equal(t, fb, g.LookupOrFallback(context.Background(), "ที่อยู่มั่ว ๆ", fb))
}

func TestGeocodeServiceDownReturnsNil(t *testing.T) {
	g := NewGeocoder()
	g.BaseURL = "http://127.0.0.1:1/search" // ไม่มีใครฟังอยู่

	assert.Nil(t, g.Lookup(context.Background(), "ไหนก็ได้"))
}
