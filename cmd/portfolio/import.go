package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsdev/portfolio"
)

var importCmd = &cobra.Command{
	Use:   "import <manifest.yml>",
	Short: "Replace the content store with the records in a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		store, err := portfolio.NewStore(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer store.Close()

		n, err := portfolio.ImportManifest(store, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s\n", n, cfg.DatabasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
