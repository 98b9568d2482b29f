package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkuanyshbaev/carbonledger/internal/config"
)

var (
	// Global flags
	configFile string
	verbose    bool
)

// session is the demo in-process ledger every subcommand operates against.
// It is rebuilt fresh for each CLI invocation from cfg and, when
// cfg.JournalPath is set, reopened from the on-disk journal.
var sess *Session

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "carbonledgerd",
	Short: "carbonledgerd - carbon-credit asset ledger demo",
	Long: `carbonledgerd drives the carbon-credit asset engine (asset classes,
accounts, transfers, approvals, burn certificates) against an in-memory or
pebble-journaled store. It is a demo harness for the ledger module, not a
production chain node.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It only needs to happen once, from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initSession)
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print emitted events")
}

// initSession loads configuration and opens the session every subcommand
// shares for the life of one CLI invocation.
func initSession() {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s, err := NewSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sess = s
}