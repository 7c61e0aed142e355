package cache

import (
	"testing"
	"time"

	"github.com/data-center-bgp/po-bunker/models"
)

func TestVesselCacheMissUntilSet(t *testing.T) {
	c := NewVesselCache(time.Minute)
	if _, ok := c.Get(); ok {
		t.Fatalf("fresh cache must miss")
	}

	c.Set([]models.Vessel{{ID: 1, Name: "MV Harmony"}})
	vessels, ok := c.Get()
	if !ok || len(vessels) != 1 || vessels[0].Name != "MV Harmony" {
		t.Fatalf("Get after Set = %+v, %v", vessels, ok)
	}
}

func TestVesselCacheExpiresAfterTTL(t *testing.T) {
	c := NewVesselCache(10 * time.Millisecond)
	c.Set([]models.Vessel{{ID: 1}})

	time.Sleep(25 * time.Millisecond)
	if _, ok := c.Get(); ok {
		t.Fatalf("entry must expire after the ttl")
	}
}

func TestVesselCacheInvalidate(t *testing.T) {
	c := NewVesselCache(time.Minute)
	c.Set([]models.Vessel{{ID: 1}})
	c.Invalidate()
	if _, ok := c.Get(); ok {
		t.Fatalf("invalidated cache must miss")
	}
}
