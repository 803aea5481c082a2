package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/commitkraft/internal/adapters/outbound/config"
	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .commitkraft.yaml configuration file",
		Long:  "Create a .commitkraft.yaml (or .commitkraft.toml) holding the built-in rules, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			if !force {
				for _, name := range config.FileNames {
					if _, err := os.Stat(filepath.Join(absPath, name)); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", name)
					}
				}
			}

			content, err := config.Marshal(domain.DefaultConfig(), f)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, f.FileName())
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f.FileName())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Config format (yaml, toml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
