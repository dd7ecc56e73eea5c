package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/prestoql/internal/exprir"
	"github.com/roach88/prestoql/internal/prestosql"
)

// RenderedExpr holds one rendered expression for output.
type RenderedExpr struct {
	Name   string `json:"name,omitempty"`
	Kind   string `json:"kind"`
	SQL    string `json:"sql"`
	Params []any  `json:"params,omitempty"`
}

// RenderResult holds the render command's output payload.
type RenderResult struct {
	InvocationID string         `json:"invocation_id"`
	ReportZone   string         `json:"report_zone,omitempty"`
	Expressions  []RenderedExpr `json:"expressions"`
}

// renderText lists each fragment as a labelled, indented SQL block.
func (r RenderResult) renderText() string {
	var sb strings.Builder
	for _, e := range r.Expressions {
		if e.Name != "" {
			fmt.Fprintf(&sb, "%s (%s):\n  %s\n", e.Name, e.Kind, e.SQL)
		} else {
			fmt.Fprintf(&sb, "%s:\n  %s\n", e.Kind, e.SQL)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <expressions-file>",
		Short: "Rewrite expression descriptions to Presto SQL",
		Long: `Rewrite an expression description file to Presto SQL fragments.

Each entry names a rewrite kind (trunc:day, extract:day-of-week,
unix-millis, ...) and an operand column with its declared Presto type.
The report zone and start-of-week come from --config when given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRender(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	exprFile, err := LoadExprFile(path)
	if err != nil {
		formatter.Error("E_LOAD", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load expressions", err)
	}

	inv, _, err := loadInvocation(opts)
	if err != nil {
		formatter.Error("E_CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load config", err)
	}
	formatter.VerboseLog("invocation %s report_zone=%q", inv.ID, inv.Zone.ID())

	rewriter := prestosql.New(inv)
	result := RenderResult{
		InvocationID: inv.ID,
		ReportZone:   inv.Zone.ID(),
	}
	for _, spec := range exprFile.Expressions {
		col := exprir.ColumnRef{
			Name: spec.Column,
			Type: exprir.BaseTypeForName(spec.Type),
		}
		expr, err := rewriter.Rewrite(prestosql.Kind(spec.Kind), []exprir.Expr{col})
		if err != nil {
			formatter.Error("E_REWRITE", err.Error(), spec)
			return WrapExitError(ExitFailure, "rewrite "+spec.Kind, err)
		}
		frag, err := exprir.Render(expr)
		if err != nil {
			formatter.Error("E_RENDER", err.Error(), spec)
			return WrapExitError(ExitFailure, "render "+spec.Kind, err)
		}
		result.Expressions = append(result.Expressions, RenderedExpr{
			Name:   spec.Name,
			Kind:   spec.Kind,
			SQL:    frag.SQL,
			Params: frag.Params,
		})
	}

	return formatter.Success(result)
}
