package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acheronlabs/evefit/internal/application/fitting/types"
	"github.com/acheronlabs/evefit/internal/domain/stats"
)

// NewCapCommand creates the cap command
func NewCapCommand() *cobra.Command {
	var (
		allLevelV  bool
		capacity   float64
		rechargeMs float64
		drain      float64
	)

	cmd := &cobra.Command{
		Use:   "cap [name]",
		Short: "Show capacitor stability for a saved fitting, or simulate raw numbers",
		Long: `Show capacitor stability for a saved fitting.

With --capacity, --recharge and --drain the simulation runs directly on the
given numbers instead, without touching any saved fitting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if capacity > 0 {
				result := stats.SimulateCapacitor(capacity, rechargeMs, drain)
				printCapVerdict(capacity, rechargeMs/1000, drain, result)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a fitting name or --capacity is required")
			}

			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			response, err := container.Mediator.Send(ctx, &types.GetStatsQuery{
				Name:      args[0],
				AllLevelV: allLevelV,
			})
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			result := response.(*types.GetStatsResponse)
			capStats := result.Stats.Capacitor
			if result.Skilled != nil {
				capStats = result.Skilled.Capacitor
			}

			fmt.Printf("Fitting: %s [%s]\n\n", result.Fitting.Name, result.Fitting.ShipName)
			fmt.Printf("  Capacity:       %.1f GJ\n", capStats.Capacity)
			fmt.Printf("  Recharge time:  %.1f s\n", capStats.RechargeTau)
			fmt.Printf("  Peak recharge:  %.2f GJ/s\n", capStats.PeakRecharge)
			fmt.Printf("  Drain:          %.2f GJ/s\n", capStats.Drain)
			printCapStability(capStats.Stable, capStats.StablePercent, capStats.LastsSeconds)

			return nil
		},
	}

	cmd.Flags().BoolVar(&allLevelV, "all-v", false, "Overlay all support skills at level V")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Capacitor capacity in GJ (raw simulation)")
	cmd.Flags().Float64Var(&rechargeMs, "recharge", 0, "Recharge time in milliseconds (raw simulation)")
	cmd.Flags().Float64Var(&drain, "drain", 0, "Constant drain in GJ/s (raw simulation)")

	return cmd
}

func printCapVerdict(capacity, tauSeconds, drain float64, result stats.CapacitorResult) {
	fmt.Printf("  Capacity:       %.1f GJ\n", capacity)
	fmt.Printf("  Recharge tau:   %.1f s\n", tauSeconds)
	fmt.Printf("  Drain:          %.2f GJ/s\n", drain)
	printCapStability(result.Stable, result.StablePercent, result.LastsSeconds)
}

func printCapStability(stable bool, stablePercent, lastsSeconds float64) {
	if stable {
		fmt.Printf("  Stable at:      %.0f%%\n", stablePercent)
	} else {
		fmt.Printf("  Lasts:          %.1f s\n", lastsSeconds)
	}
}
