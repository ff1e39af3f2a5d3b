package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evefit",
		Short: "evefit - EVE Online ship fitting simulator",
		Long: `evefit imports, inspects and persists EVE Online ship fittings.

Examples:
  evefit fit import my-rifter.eft --save "PvP Rifter"
  evefit fit stats "PvP Rifter" --all-v
  evefit fit export "PvP Rifter"
  evefit fit list
  evefit cap "PvP Rifter"
  evefit skillplan "PvP Rifter"`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewFitCommand())
	rootCmd.AddCommand(NewSkillPlanCommand())
	rootCmd.AddCommand(NewCapCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
