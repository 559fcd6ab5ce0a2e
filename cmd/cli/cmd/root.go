// Package cmd provides the CLI commands for charter-forecast.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"charter-forecast/internal/config"
	"charter-forecast/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// appConfig is resolved once in initConfig and passed down explicitly;
	// the engine itself never reads configuration.
	appConfig = config.Default()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "charter-forecast",
	Short: "Project 10-year finances for a charter school network",
	Long: `charter-forecast models a network of charter schools over a ten-year
horizon: per-school growth and inflation projection, Obligated-Group rent
smoothing, enrollment-proportional shared staff allocation, and the
consolidated home-office view.

Examples:
  charter-forecast forecast
  charter-forecast forecast --scenario aggressive.hcl --format json
  charter-forecast forecast --growth --growth-target 800 --year 5
  charter-forecast scenario init`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.charter-forecast.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		appConfig = cfg
	}

	if verbose {
		appConfig.Logging.Level = "debug"
	}
	if err := logging.Initialize(appConfig.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("charter-forecast version 0.1.0")
	},
}
