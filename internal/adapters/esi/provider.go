package esi

import (
	"context"
	"fmt"
	"strings"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// TypeStore is an optional persistent second-level cache behind the
// in-memory one. A nil store disables persistence.
type TypeStore interface {
	FindType(ctx context.Context, typeID int) (*fitting.TypeEntity, error)
	SaveType(ctx context.Context, entity *fitting.TypeEntity) error
	FindGroupName(ctx context.Context, groupID int) (string, error)
	SaveGroupName(ctx context.Context, groupID int, name string) error
}

// CachedTypeProvider resolves type data through ESI with a read-through
// memory cache and an optional persistent store
type CachedTypeProvider struct {
	client *Client
	cache  *TypeCache
	store  TypeStore
}

// NewCachedTypeProvider creates a provider backed by the given client
// If cache is nil a default 24h cache is used; store may be nil
func NewCachedTypeProvider(client *Client, cache *TypeCache, store TypeStore) *CachedTypeProvider {
	if cache == nil {
		cache = NewTypeCache(DefaultCacheTTL, nil)
	}
	return &CachedTypeProvider{
		client: client,
		cache:  cache,
		store:  store,
	}
}

var _ ports.TypeProvider = (*CachedTypeProvider)(nil)

// GetType fetches a type entity: memory cache, then store, then ESI.
// A 404 from ESI surfaces as shared.TypeNotFoundError.
func (p *CachedTypeProvider) GetType(ctx context.Context, typeID int) (*fitting.TypeEntity, error) {
	if entity := p.cache.GetType(typeID); entity != nil {
		return entity, nil
	}

	if p.store != nil {
		if entity, err := p.store.FindType(ctx, typeID); err == nil && entity != nil {
			p.cache.PutType(entity)
			return entity, nil
		}
	}

	data, err := p.client.GetType(ctx, typeID)
	if err != nil {
		if isNotFound(err) {
			return nil, shared.NewTypeNotFoundError(typeID)
		}
		return nil, err
	}

	group, err := p.client.GetGroup(ctx, data.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group for type %d: %w", typeID, err)
	}
	p.cache.PutGroupName(group.GroupID, group.Name)

	entity := convertType(data, group.CategoryID)
	p.cache.PutType(entity)
	if p.store != nil {
		_ = p.store.SaveType(ctx, entity)
		_ = p.store.SaveGroupName(ctx, group.GroupID, group.Name)
	}

	return entity, nil
}

// ResolveNames maps exact type names to ids, serving what it can from
// cache and batching the rest through /universe/ids
func (p *CachedTypeProvider) ResolveNames(ctx context.Context, names []string) (map[string]int, error) {
	resolved := make(map[string]int, len(names))
	var missing []string

	for _, name := range names {
		if id, ok := p.cache.GetName(name); ok {
			resolved[name] = id
		} else {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return resolved, nil
	}

	fetched, err := p.client.ResolveIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for name, id := range fetched {
		p.cache.PutName(name, id)
		resolved[name] = id
	}

	return resolved, nil
}

// GroupName returns the display name of a group, or "" when unknown
func (p *CachedTypeProvider) GroupName(ctx context.Context, groupID int) (string, error) {
	if name, ok := p.cache.GetGroupName(groupID); ok {
		return name, nil
	}

	if p.store != nil {
		if name, err := p.store.FindGroupName(ctx, groupID); err == nil && name != "" {
			p.cache.PutGroupName(groupID, name)
			return name, nil
		}
	}

	group, err := p.client.GetGroup(ctx, groupID)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}

	p.cache.PutGroupName(group.GroupID, group.Name)
	if p.store != nil {
		_ = p.store.SaveGroupName(ctx, group.GroupID, group.Name)
	}

	return group.Name, nil
}

func convertType(data *TypeData, categoryID int) *fitting.TypeEntity {
	attributes := make(map[int]float64, len(data.Attributes))
	for _, a := range data.Attributes {
		attributes[a.AttributeID] = a.Value
	}
	effects := make([]int, 0, len(data.Effects))
	for _, e := range data.Effects {
		effects = append(effects, e.EffectID)
	}

	return &fitting.TypeEntity{
		ID:         data.TypeID,
		Name:       data.Name,
		GroupID:    data.GroupID,
		CategoryID: categoryID,
		Mass:       data.Mass,
		Volume:     data.Volume,
		Attributes: attributes,
		Effects:    effects,
	}
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "status 404")
}
