package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"transfer-route-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisGeometryCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeometryCache(client, time.Hour)
}

func TestRedisGeometryCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	geom := domain.LegGeometry{
		From:       "store_2",
		To:         "store_1",
		Points:     []domain.GeoPoint{{Lat: 23.25, Lon: 77.41}, {Lat: 23.31, Lon: 77.35}},
		DistanceKm: 9.4,
	}

	if err := c.Put(ctx, "leg:77.41,23.25|77.35,23.31", geom); err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	got, hit, err := c.Get(ctx, "leg:77.41,23.25|77.35,23.31")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.From != geom.From || got.To != geom.To {
		t.Fatalf("endpoints = %s -> %s, want %s -> %s", got.From, got.To, geom.From, geom.To)
	}
	if len(got.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got.Points))
	}
	if got.DistanceKm != geom.DistanceKm {
		t.Fatalf("distance = %v, want %v", got.DistanceKm, geom.DistanceKm)
	}
}

func TestRedisGeometryCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, hit, err := c.Get(context.Background(), "leg:unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected cache miss")
	}
}

func TestRedisGeometryCacheEmptyKey(t *testing.T) {
	c := newTestCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if err := c.Put(context.Background(), "", domain.LegGeometry{}); err == nil {
		t.Fatal("expected error for empty key")
	}
}
