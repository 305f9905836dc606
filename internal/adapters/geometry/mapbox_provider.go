package geometry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"transfer-route-service/internal/adapters/cache"
	"transfer-route-service/internal/domain"
	"transfer-route-service/internal/platform/obs"
)

// MapboxGeometryProvider implements GeometryProvider using the Mapbox
// Directions API.
//
// It coordinates:
//   - Persistent geometry caching (Redis)
//   - External API calls with retry/backoff
//   - Outbound rate limiting against the request budget
//
// The provider is safe for concurrent use.
type MapboxGeometryProvider struct {
	session *http.Client
	token   string
	baseURL string
	profile string
	cache   *cache.RedisGeometryCache
	limiter *rate.Limiter
}

func NewMapboxGeometryProvider(token string, geometryCache *cache.RedisGeometryCache) (*MapboxGeometryProvider, error) {
	if token == "" {
		return nil, errors.New("mapbox access token is empty")
	}

	provider := &MapboxGeometryProvider{
		session: &http.Client{Timeout: 6 * time.Second},
		token:   token,
		baseURL: "https://api.mapbox.com",
		profile: "mapbox/driving",
		cache:   geometryCache,
		// 10 rps sustained with short bursts stays far inside the free tier.
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}

	return provider, nil
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// legKey builds a coordinate-derived cache key so renamed stores at the same
// location still hit.
func legKey(from, to domain.Location) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return "leg:" + f(from.Lon) + "," + f(from.Lat) + "|" + f(to.Lon) + "," + f(to.Lat)
}

// FetchLeg returns the road polyline between two located stores.
func (m *MapboxGeometryProvider) FetchLeg(ctx context.Context, from, to domain.Location) (_ domain.LegGeometry, err error) {
	defer obs.Time(ctx, "mapbox.FetchLeg")(&err)

	key := legKey(from, to)

	// Check the persistent cache before issuing external API calls.
	if m.cache != nil {
		cached, hit, err := m.cache.Get(ctx, key)
		if err != nil {
			log.Printf("geometry cache read failed: %v", err)
		} else if hit {
			cached.From = from.ID
			cached.To = to.ID
			return cached, nil
		}
	}

	endpoint := fmt.Sprintf(
		"%s/directions/v5/%s/%s,%s;%s,%s",
		m.baseURL, m.profile,
		strconv.FormatFloat(from.Lon, 'f', 6, 64), strconv.FormatFloat(from.Lat, 'f', 6, 64),
		strconv.FormatFloat(to.Lon, 'f', 6, 64), strconv.FormatFloat(to.Lat, 'f', 6, 64),
	)

	query := url.Values{}
	query.Set("geometries", "geojson")
	query.Set("overview", "full")
	query.Set("access_token", m.token)
	endpoint += "?" + query.Encode()

	resp, err := m.doWithRetry(ctx, func() (*http.Request, error) {
		return m.newRequest(ctx, endpoint)
	})
	if err != nil {
		return domain.LegGeometry{}, fmt.Errorf("directions request %q -> %q: %w", from.ID, to.ID, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.LegGeometry{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return domain.LegGeometry{}, fmt.Errorf("no route returned for %q -> %q", from.ID, to.ID)
	}

	route := decoded.Routes[0]
	points := make([]domain.GeoPoint, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) != 2 {
			return domain.LegGeometry{}, fmt.Errorf("invalid coordinate in directions response for %q -> %q", from.ID, to.ID)
		}
		points = append(points, domain.GeoPoint{Lon: c[0], Lat: c[1]})
	}

	geom := domain.LegGeometry{
		From:       from.ID,
		To:         to.ID,
		Points:     points,
		DistanceKm: route.Distance / 1000,
	}

	if m.cache != nil {
		if err := m.cache.Put(ctx, key, geom); err != nil {
			log.Printf("geometry cache write failed: %v", err)
		}
	}

	return geom, nil
}
