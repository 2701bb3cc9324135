package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fenestra-app/fenestra/pkg/store"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove recovery snapshots older than the retention window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		removed, err := s.SweepExpired()
		if err != nil {
			return err
		}

		fmt.Printf("Removed %d expired recovery snapshot(s)\n", removed)
		return nil
	},
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect or change persisted preferences",
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the persisted preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		prefs, err := s.LoadPreferences()
		if err != nil {
			return err
		}

		fmt.Printf("theme: %s\n", prefs.Theme)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Set the persisted theme (light, dark, or system)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		prefs, err := s.LoadPreferences()
		if err != nil {
			return err
		}
		prefs.Theme = store.Theme(args[0])

		if err := s.SavePreferences(prefs); err != nil {
			return err
		}

		fmt.Printf("theme set to %s\n", prefs.Theme)
		return nil
	},
}

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Inspect emergency recovery snapshots",
}

var recoveryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored recovery snapshots with size and age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		infos, err := s.ListRecovery()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No recovery snapshots stored.")
			return nil
		}

		for _, info := range infos {
			age := time.Since(info.ModTime).Round(time.Minute)
			fmt.Printf("%-40s %8d bytes  %s old\n", info.Key, info.Size, age)
		}
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	recoveryCmd.AddCommand(recoveryListCmd)
}
