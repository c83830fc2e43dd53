package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// LatLng พิกัดจากการ geocode
type LatLng struct {
	Lat float64
	Lng float64
}

// Geocoder แปลงที่อยู่เป็นพิกัดผ่าน service สาธารณะ (nominatim-compatible)
type Geocoder struct {
	BaseURL string
	HTTP    *http.Client
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		BaseURL: "https://nominatim.openstreetmap.org/search",
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup คืน nil เมื่อหาไม่เจอหรือ service ล่ม — ให้ caller ตัดสินใจ fallback เอง
func (g *Geocoder) Lookup(ctx context.Context, address string) *LatLng {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		log.Printf("geocode request error: %v", err)
		return nil
	}

	res, err := g.HTTP.Do(req)
	if err != nil {
		log.Printf("geocode lookup failed: %v", err)
		return nil
	}
	defer res.Body.Close()

	var rows []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		log.Printf("geocode decode error: %v", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	lat, err1 := strconv.ParseFloat(rows[0].Lat, 64)
	lng, err2 := strconv.ParseFloat(rows[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &LatLng{Lat: lat, Lng: lng}
}

// LookupOrFallback ลอง geocode ก่อน ไม่ได้ค่อยใช้พิกัดที่ผู้ใช้ปักหมุดมา
func (g *Geocoder) LookupOrFallback(ctx context.Context, address string, fallback *LatLng) *LatLng {
	if ll := g.Lookup(ctx, address); ll != nil {
		return ll
	}
	return fallback
}
