package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-config [file|stdout]",
		Short: "Generate a config template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := ""
			if len(args) > 0 {
				o = args[0]
			}

			b := new(bytes.Buffer)
			if err := config.WriteTemplate(b); err != nil {
				return err
			}

			if len(o) == 0 || o == "stdout" {
				_, err := cmd.OutOrStdout().Write(b.Bytes())
				return err
			}

			if err := os.WriteFile(o, b.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}
