package common

import (
	"context"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
)

// FittingRepository persists named fittings. Fittings are stored as opaque
// serializable documents; saving and loading are always explicit
// operations, never a side effect of a mutation.
type FittingRepository interface {
	Save(ctx context.Context, fit *fitting.Fitting) error
	FindByName(ctx context.Context, name string) (*fitting.Fitting, error)
	List(ctx context.Context) ([]*fitting.Fitting, error)
	Delete(ctx context.Context, name string) error
}
