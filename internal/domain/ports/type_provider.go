// Package ports declares the interfaces the domain core needs from
// external collaborators.
package ports

import (
	"context"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
)

// TypeProvider supplies ship/module type definitions. GetType signals a
// missing id with shared.TypeNotFoundError; callers absorb the miss as an
// omission, never as a failure of the surrounding operation.
type TypeProvider interface {
	// GetType fetches the TypeEntity for a type id.
	GetType(ctx context.Context, typeID int) (*fitting.TypeEntity, error)

	// ResolveNames maps exact names to type ids. Names that do not resolve
	// are simply absent from the result; the call only fails on transport
	// errors.
	ResolveNames(ctx context.Context, names []string) (map[string]int, error)

	// GroupName returns the display name of a group id, or "" when unknown.
	GroupName(ctx context.Context, groupID int) (string, error)
}
