package cache

import (
	"sync"
	"time"

	"github.com/data-center-bgp/po-bunker/models"
)

// VesselCache keeps the backend vessel list for a short window so repeated
// form opens do not refetch the registry.
type VesselCache struct {
	mu        sync.RWMutex
	vessels   []models.Vessel
	expiresAt time.Time
	ttl       time.Duration
}

func NewVesselCache(ttl time.Duration) *VesselCache {
	return &VesselCache{ttl: ttl}
}

func (c *VesselCache) Get() ([]models.Vessel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vessels == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.vessels, true
}

func (c *VesselCache) Set(vessels []models.Vessel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vessels = vessels
	c.expiresAt = time.Now().Add(c.ttl)
}

// Invalidate drops the cached list. Called on logout so the next session
// fetches fresh data.
func (c *VesselCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vessels = nil
	c.expiresAt = time.Time{}
}
