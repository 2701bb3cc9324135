package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fenestra-app/fenestra/pkg/config"
	"github.com/fenestra-app/fenestra/pkg/filesystem"
	"github.com/fenestra-app/fenestra/pkg/logging"
	"github.com/fenestra-app/fenestra/pkg/store"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "fenestra",
		Short: "Maintenance tooling for the Fenestra data directory",
		Long: `fenestra inspects and maintains the on-disk state of the Fenestra
desktop application: persisted preferences and emergency recovery snapshots.
The running application manages this state itself; this tool covers the same
operations from the command line.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(recoveryCmd)
}

// openStore builds a store over the OS filesystem using the loaded
// configuration.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.New(filesystem.NewOS(), cfg.Paths(), cfg.StoreOptions()...), nil
}
