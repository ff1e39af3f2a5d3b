package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/acheronlabs/evefit/internal/application/fitting/types"
)

const commandTimeout = 60 * time.Second

// NewFitCommand creates the fit command with subcommands
func NewFitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Manage ship fittings",
		Long:  `Import, export, inspect and manage saved ship fittings.`,
	}

	cmd.AddCommand(newFitImportCommand())
	cmd.AddCommand(newFitExportCommand())
	cmd.AddCommand(newFitStatsCommand())
	cmd.AddCommand(newFitListCommand())
	cmd.AddCommand(newFitDeleteCommand())

	return cmd
}

// newFitImportCommand imports an EFT fitting from a file or stdin
func newFitImportCommand() *cobra.Command {
	var saveAs string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a fitting from EFT text",
		Long:  `Import a fitting from an EFT file, or from stdin when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			response, err := container.Mediator.Send(ctx, &types.ImportEFTCommand{
				Text:   text,
				SaveAs: saveAs,
			})
			if err != nil {
				return fmt.Errorf("failed to import fitting: %w", err)
			}

			result := response.(*types.ImportEFTResponse)

			fmt.Printf("Imported: %s [%s]\n", result.Fitting.Name, result.Fitting.ShipName)
			if len(result.Dropped) > 0 {
				fmt.Printf("\nSkipped %d unresolvable entries:\n", len(result.Dropped))
				for _, name := range result.Dropped {
					fmt.Printf("  - %s\n", name)
				}
			}
			if saveAs != "" {
				fmt.Printf("\nSaved as %q\n", saveAs)
			}

			fmt.Println()
			printStats(&result.Stats)

			return nil
		},
	}

	cmd.Flags().StringVar(&saveAs, "save", "", "Persist the imported fitting under this name")

	return cmd
}

// newFitExportCommand exports a saved fitting as EFT text
func newFitExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <name>",
		Short: "Export a saved fitting as EFT text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			response, err := container.Mediator.Send(ctx, &types.ExportEFTQuery{Name: args[0]})
			if err != nil {
				return fmt.Errorf("failed to export fitting: %w", err)
			}

			fmt.Print(response.(*types.ExportEFTResponse).Text)
			return nil
		},
	}
}

// newFitStatsCommand shows the derived stats of a saved fitting
func newFitStatsCommand() *cobra.Command {
	var allLevelV bool

	cmd := &cobra.Command{
		Use:   "stats <name>",
		Short: "Show derived stats for a saved fitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			fmt.Printf("Fitting: %s [%s]\n\n", result.Fitting.Name, result.Fitting.ShipName)
			printStats(&result.Stats)

			if result.Skilled != nil {
				fmt.Println("\nWith all support skills at level V:")
				printStats(result.Skilled)
				printDeltas(&result.Deltas)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allLevelV, "all-v", false, "Overlay all support skills at level V")

	return cmd
}

// newFitListCommand lists all saved fittings
func newFitListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved fittings",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			response, err := container.Mediator.Send(ctx, &types.ListFittingsQuery{})
			if err != nil {
				return fmt.Errorf("failed to list fittings: %w", err)
			}

			result := response.(*types.ListFittingsResponse)
			if len(result.Fittings) == 0 {
				fmt.Println("No fittings saved")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSHIP\tMODULES")
			for _, fit := range result.Fittings {
				fmt.Fprintf(w, "%s\t%s\t%d\n",
					truncate(fit.Name, 30),
					truncate(fit.ShipName, 20),
					len(fit.Modules()),
				)
			}
			w.Flush()
			fmt.Printf("\nTotal: %d fittings\n", len(result.Fittings))

			return nil
		},
	}
}

// newFitDeleteCommand deletes a saved fitting
func newFitDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved fitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := NewContainer(configPath)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			if _, err := container.Mediator.Send(ctx, &types.DeleteFittingCommand{Name: args[0]}); err != nil {
				return fmt.Errorf("failed to delete fitting: %w", err)
			}

			fmt.Printf("Deleted %q\n", args[0])
			return nil
		},
	}
}
