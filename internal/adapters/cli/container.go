package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/acheronlabs/evefit/internal/adapters/esi"
	"github.com/acheronlabs/evefit/internal/adapters/persistence"
	"github.com/acheronlabs/evefit/internal/application/common"
	fittingcommands "github.com/acheronlabs/evefit/internal/application/fitting/commands"
	fittingqueries "github.com/acheronlabs/evefit/internal/application/fitting/queries"
	fittingtypes "github.com/acheronlabs/evefit/internal/application/fitting/types"
	skillplanqueries "github.com/acheronlabs/evefit/internal/application/skillplan/queries"
	skillplantypes "github.com/acheronlabs/evefit/internal/application/skillplan/types"
	"github.com/acheronlabs/evefit/internal/domain/ports"
	"github.com/acheronlabs/evefit/internal/domain/stats"
	"github.com/acheronlabs/evefit/internal/infrastructure/config"
	"github.com/acheronlabs/evefit/internal/infrastructure/database"
)

// Container wires configuration, database, the ESI provider and the
// mediator with every registered handler
type Container struct {
	Config   *config.Config
	DB       *gorm.DB
	Provider ports.TypeProvider
	Mediator common.Mediator
}

// NewContainer builds the dependency graph for CLI commands
func NewContainer(configPath string) (*Container, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client := esi.NewClientWithConfig(esi.ClientConfig{
		BaseURL:           cfg.ESI.BaseURL,
		Timeout:           cfg.ESI.Timeout,
		RequestsPerSecond: cfg.ESI.RateLimit.Requests,
		Burst:             cfg.ESI.RateLimit.Burst,
		MaxRetries:        cfg.ESI.Retry.MaxAttempts,
		BackoffBase:       cfg.ESI.Retry.BackoffBase,
	}, nil)
	cache := esi.NewTypeCache(cfg.ESI.CacheTTL, nil)
	store := persistence.NewGormTypeCacheRepository(db)
	provider := esi.NewCachedTypeProvider(client, cache, store)

	fittingRepo := persistence.NewGormFittingRepository(db)

	calc := stats.NewCalculator()
	if cfg.Simulation.MaxSeconds > 0 {
		calc.MaxSimSeconds = cfg.Simulation.MaxSeconds
	}

	mediator := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[*fittingtypes.ImportEFTCommand](mediator, fittingcommands.NewImportEFTHandler(provider, fittingRepo, calc)),
		common.RegisterHandler[*fittingtypes.SaveFittingCommand](mediator, fittingcommands.NewSaveFittingHandler(fittingRepo)),
		common.RegisterHandler[*fittingtypes.DeleteFittingCommand](mediator, fittingcommands.NewDeleteFittingHandler(fittingRepo)),
		common.RegisterHandler[*fittingtypes.ExportEFTQuery](mediator, fittingqueries.NewExportEFTHandler(fittingRepo)),
		common.RegisterHandler[*fittingtypes.GetStatsQuery](mediator, fittingqueries.NewGetStatsHandler(fittingRepo, provider, calc)),
		common.RegisterHandler[*fittingtypes.ListFittingsQuery](mediator, fittingqueries.NewListFittingsHandler(fittingRepo)),
		common.RegisterHandler[*skillplantypes.BuildSkillPlanQuery](mediator, skillplanqueries.NewBuildSkillPlanHandler(fittingRepo, provider)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Provider: provider,
		Mediator: mediator,
	}, nil
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.DB != nil {
		return database.Close(c.DB)
	}
	return nil
}
