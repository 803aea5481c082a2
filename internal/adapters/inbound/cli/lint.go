package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openkraft/commitkraft/internal/adapters/outbound/cache"
	"github.com/openkraft/commitkraft/internal/adapters/outbound/gitlog"
	"github.com/openkraft/commitkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/commitkraft/internal/application"
	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/openkraft/commitkraft/internal/logger"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var (
		flags      configFlags
		message    string
		from, to   string
		jsonOutput bool
		strict     bool
		useCache   bool
	)

	cmd := &cobra.Command{
		Use:   "lint [file|-]",
		Short: "Lint a commit message or a range of commits",
		Long: `Lint a commit message given with --message, read from a file, or read from
stdin ("-" or no argument). With --from or --to the commits of that git range
are linted instead. Exits 1 when any message fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []application.Option
			if useCache {
				opts = append(opts, application.WithCache(cache.New()))
			}
			svc, absPath, err := flags.service(cmd, opts...)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if from != "" || to != "" {
				if !gitlog.New().IsGitRepo(absPath) {
					return fmt.Errorf("%s is not a git repository", absPath)
				}
				reports, err := svc.LintCommits(ctx, absPath, from, to)
				if err != nil {
					return err
				}
				if jsonOutput {
					if err := renderJSON(cmd, reports); err != nil {
						return err
					}
				} else {
					fmt.Fprint(out, tui.RenderCommitReports(reports))
				}
				for _, r := range reports {
					if !r.Passed(strict) {
						return ErrLintFailed
					}
				}
				return nil
			}

			raw, err := readMessage(cmd, message, args)
			if err != nil {
				return err
			}

			report, err := svc.Lint(ctx, raw)
			if err != nil {
				var malformed *domain.MalformedMessageError
				if !errors.As(err, &malformed) {
					return err
				}
				logger.Debug(ctx, "message rejected", "reason", malformed.Reason)
				if jsonOutput {
					if err := renderJSON(cmd, map[string]string{"error": err.Error()}); err != nil {
						return err
					}
				} else {
					fmt.Fprint(out, tui.RenderMalformed(err))
				}
				return ErrLintFailed
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, tui.RenderReport(header(raw), report))
			}
			if !report.Passed(strict) {
				return ErrLintFailed
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message to lint")
	cmd.Flags().StringVar(&from, "from", "", "Lint commits after this revision")
	cmd.Flags().StringVar(&to, "to", "", "Lint commits up to this revision (default HEAD)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Reuse verdicts of already linted commits (stored in .commitkraft/cache)")

	return cmd
}

func readMessage(cmd *cobra.Command, message string, args []string) (string, error) {
	if cmd.Flags().Changed("message") {
		return message, nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading message file: %w", err)
	}
	return stripComments(string(data)), nil
}

// stripComments drops the "#" lines git adds to COMMIT_EDITMSG.
func stripComments(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func header(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	return strings.TrimRight(line, "\r")
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
