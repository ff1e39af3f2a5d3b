package helpers

import (
	"context"
	"fmt"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
	"github.com/acheronlabs/evefit/internal/domain/shared"
)

// MockTypeProvider serves type definitions from in-memory maps
type MockTypeProvider struct {
	Types  map[int]*fitting.TypeEntity
	Groups map[int]string

	// FailTypes makes GetType return a transport error for these ids,
	// to exercise partial-failure paths
	FailTypes map[int]bool
}

// NewMockTypeProvider creates an empty mock provider
func NewMockTypeProvider() *MockTypeProvider {
	return &MockTypeProvider{
		Types:     make(map[int]*fitting.TypeEntity),
		Groups:    make(map[int]string),
		FailTypes: make(map[int]bool),
	}
}

// Add registers a type entity, making it resolvable by id and name
func (p *MockTypeProvider) Add(entity *fitting.TypeEntity) *MockTypeProvider {
	p.Types[entity.ID] = entity
	return p
}

// AddGroup registers a group display name
func (p *MockTypeProvider) AddGroup(groupID int, name string) *MockTypeProvider {
	p.Groups[groupID] = name
	return p
}

func (p *MockTypeProvider) GetType(ctx context.Context, typeID int) (*fitting.TypeEntity, error) {
	if p.FailTypes[typeID] {
		return nil, fmt.Errorf("simulated transport failure for type %d", typeID)
	}
	entity, ok := p.Types[typeID]
	if !ok {
		return nil, shared.NewTypeNotFoundError(typeID)
	}
	return entity, nil
}

func (p *MockTypeProvider) ResolveNames(ctx context.Context, names []string) (map[string]int, error) {
	byName := make(map[string]int, len(p.Types))
	for id, entity := range p.Types {
		byName[entity.Name] = id
	}

	resolved := make(map[string]int)
	for _, name := range names {
		if id, ok := byName[name]; ok {
			resolved[name] = id
		}
	}
	return resolved, nil
}

func (p *MockTypeProvider) GroupName(ctx context.Context, groupID int) (string, error) {
	return p.Groups[groupID], nil
}
