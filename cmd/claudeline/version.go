package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LounisBou/claudeline/internal/update"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the claudeline version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("claudeline " + update.StripV(Version))
		if !versionCheck {
			return nil
		}
		rel, err := update.Check(Version)
		if err != nil {
			return err
		}
		if rel == nil {
			fmt.Println("up to date")
			return nil
		}
		fmt.Printf("update available: %s (run 'claudeline update')\n", rel.Version)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and install the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rel, err := update.Check(Version)
		if err != nil {
			return err
		}
		if rel == nil {
			fmt.Println("already up to date")
			return nil
		}
		fmt.Printf("updating to %s...\n", rel.Version)
		if err := update.Apply(rel.URL); err != nil {
			return err
		}
		fmt.Println("done")
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd, updateCmd)
}
