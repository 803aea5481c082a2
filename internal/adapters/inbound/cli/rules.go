package cli

import (
	"fmt"

	"github.com/openkraft/commitkraft/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var (
		flags      configFlags
		all        bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the configured rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := flags.service(cmd)
			if err != nil {
				return err
			}

			configs := svc.EnabledRules()
			if all {
				configs = svc.Rules()
			}
			if jsonOutput {
				return renderJSON(cmd, configs)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(configs))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Include rules that are off")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")

	return cmd
}

func newTypesCmd() *cobra.Command {
	var (
		flags      configFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List commit types and scopes with their descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := flags.service(cmd)
			if err != nil {
				return err
			}

			p := svc.Presentation()
			if jsonOutput {
				return renderJSON(cmd, p)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTypes(p))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output types as JSON")

	return cmd
}
