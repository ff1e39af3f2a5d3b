package esi

import (
	"sync"
	"time"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// DefaultCacheTTL matches the expiry ESI advertises for static universe data
const DefaultCacheTTL = 24 * time.Hour

type cachedType struct {
	entity    *fitting.TypeEntity
	expiresAt time.Time
}

type cachedName struct {
	typeID    int
	expiresAt time.Time
}

type cachedGroup struct {
	name      string
	expiresAt time.Time
}

// TypeCache is an in-memory TTL cache in front of the ESI client.
// Expired entries are evicted lazily on read.
type TypeCache struct {
	mu     sync.RWMutex
	ttl    time.Duration
	clock  shared.Clock
	types  map[int]cachedType
	names  map[string]cachedName
	groups map[int]cachedGroup
}

// NewTypeCache creates a cache with the given TTL
// If clock is nil, uses RealClock for production
func NewTypeCache(ttl time.Duration, clock shared.Clock) *TypeCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &TypeCache{
		ttl:    ttl,
		clock:  clock,
		types:  make(map[int]cachedType),
		names:  make(map[string]cachedName),
		groups: make(map[int]cachedGroup),
	}
}

// GetType returns a cached type entity, or nil on miss or expiry
func (c *TypeCache) GetType(typeID int) *fitting.TypeEntity {
	c.mu.RLock()
	entry, found := c.types[typeID]
	c.mu.RUnlock()

	if !found {
		return nil
	}
	if c.clock.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.types, typeID)
		c.mu.Unlock()
		return nil
	}
	return entry.entity
}

// PutType stores a type entity
func (c *TypeCache) PutType(entity *fitting.TypeEntity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[entity.ID] = cachedType{
		entity:    entity,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}

// GetName returns a cached name resolution, false on miss or expiry
func (c *TypeCache) GetName(name string) (int, bool) {
	c.mu.RLock()
	entry, found := c.names[name]
	c.mu.RUnlock()

	if !found {
		return 0, false
	}
	if c.clock.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.names, name)
		c.mu.Unlock()
		return 0, false
	}
	return entry.typeID, true
}

// PutName stores a name resolution
func (c *TypeCache) PutName(name string, typeID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[name] = cachedName{
		typeID:    typeID,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}

// GetGroupName returns a cached group name, false on miss or expiry
func (c *TypeCache) GetGroupName(groupID int) (string, bool) {
	c.mu.RLock()
	entry, found := c.groups[groupID]
	c.mu.RUnlock()

	if !found {
		return "", false
	}
	if c.clock.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.groups, groupID)
		c.mu.Unlock()
		return "", false
	}
	return entry.name, true
}

// PutGroupName stores a group name
func (c *TypeCache) PutGroupName(groupID int, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups[groupID] = cachedGroup{
		name:      name,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}
