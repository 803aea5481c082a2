package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/commitkraft/internal/adapters/outbound/config"
	"github.com/openkraft/commitkraft/internal/adapters/outbound/gitlog"
	"github.com/openkraft/commitkraft/internal/application"
	"github.com/openkraft/commitkraft/internal/logger"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrLintFailed is returned when at least one message failed. The report
// has already been printed, so Execute does not print it again.
var ErrLintFailed = errors.New("commit message lint failed")

func newRootCmd() *cobra.Command {
	var verbose, debug bool

	cmd := &cobra.Command{
		Use:   "commitkraft",
		Short: "Lint commit messages against conventional commit rules",
		Long:  "commitkraft checks commit messages against a configurable set of conventional-commit rules and reports every violation by severity.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Initialize(debug, verbose)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, ErrLintFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// configFlags are shared by every command that reads the project config.
type configFlags struct {
	path       string
	configFile string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", ".", "Project path to read the config and git history from")
	cmd.Flags().StringVar(&f.configFile, "config", "", "Config file (defaults to .commitkraft.yaml or .commitkraft.toml in --path)")
}

func (f *configFlags) service(cmd *cobra.Command, opts ...application.Option) (*application.LintService, string, error) {
	absPath, err := filepath.Abs(f.path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := application.LoadConfig(cmd.Context(), config.New(), absPath, f.configFile)
	if err != nil {
		return nil, "", err
	}

	svc, err := application.NewLintService(cfg, gitlog.New(), opts...)
	if err != nil {
		return nil, "", err
	}
	return svc, absPath, nil
}
