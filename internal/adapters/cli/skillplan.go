package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acheronlabs/evefit/internal/application/skillplan/types"
	"github.com/acheronlabs/evefit/internal/domain/skillplan"
)

// NewSkillPlanCommand creates the skillplan command
func NewSkillPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "skillplan <name>",
		Short: "Show the skill plan for a saved fitting",
		Long: `Resolve the full skill prerequisite tree for a saved fitting and print
it in three stages: minimum to fit, recommended, and mastery.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			response, err := container.Mediator.Send(ctx, &types.BuildSkillPlanQuery{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to build skill plan: %w", err)
			}

			plan := response.(*types.BuildSkillPlanResponse).Plan

			printStage("Minimum", plan.Minimum)
			printStage("Recommended", plan.Recommended)
			printStage("Mastery", plan.Mastery)

			return nil
		},
	}
}

func printStage(title string, stage []skillplan.Requirement) {
	fmt.Printf("%s (%d skills)\n", title, len(stage))
	for _, req := range stage {
		fmt.Printf("  %-40s %s\n", req.SkillName, romanLevel(req.RequiredLevel))
	}
	fmt.Println()
}

func romanLevel(level int) string {
	numerals := []string{"0", "I", "II", "III", "IV", "V"}
	if level < 0 || level >= len(numerals) {
		return fmt.Sprintf("%d", level)
	}
	return numerals[level]
}
