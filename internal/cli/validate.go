package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/prestoql/internal/config"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid          bool   `json:"valid"`
	ReportTimezone string `json:"report_timezone,omitempty"`
	StartOfWeek    string `json:"start_of_week,omitempty"`
}

func (r ValidationResult) renderText() string {
	return fmt.Sprintf("valid (report_timezone=%q, start_of_week=%s)",
		r.ReportTimezone, r.StartOfWeek)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a YAML configuration file without connecting to the server.

Checks that the report timezone resolves, the start-of-week names a
weekday, and the Kerberos section is complete when enabled.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(path)
	if err != nil {
		formatter.Error("E_CONFIG", err.Error(), nil)
		return WrapExitError(ExitFailure, "validate config", err)
	}

	startOfWeek, _ := cfg.StartOfWeekday()
	result := ValidationResult{
		Valid:          true,
		ReportTimezone: cfg.ReportTimezone,
		StartOfWeek:    startOfWeek.String(),
	}
	return formatter.Success(result)
}
