package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/prestoql/internal/conn"
)

// SchemaSyncResult holds the schemas command's output payload.
type SchemaSyncResult struct {
	Catalog string        `json:"catalog"`
	Schemas []SchemaEntry `json:"schemas"`
}

// SchemaEntry is one schema with its tables.
type SchemaEntry struct {
	Name   string   `json:"name"`
	Tables []string `json:"tables,omitempty"`
}

// renderText lists schemas one per line with their tables indented under
// them, matching how the engine's own SHOW output nests.
func (r SchemaSyncResult) renderText() string {
	var sb strings.Builder
	for _, entry := range r.Schemas {
		sb.WriteString(entry.Name)
		sb.WriteString("\n")
		for _, table := range entry.Tables {
			sb.WriteString("  ")
			sb.WriteString(table)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// NewSchemasCommand creates the schemas command.
func NewSchemasCommand(rootOpts *RootOptions) *cobra.Command {
	var withTables bool

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "Enumerate schemas and tables from the configured server",
		Long: `Connect to the configured Presto server and enumerate schemas, and
optionally tables, of the configured catalog.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchemas(rootOpts, withTables, cmd)
		},
	}

	cmd.Flags().BoolVar(&withTables, "tables", false, "also list tables per schema")

	return cmd
}

func runSchemas(opts *RootOptions, withTables bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	_, cfg, err := loadInvocation(opts)
	if err != nil {
		formatter.Error("E_CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load config", err)
	}
	if cfg == nil || cfg.Server.URI == "" {
		err := fmt.Errorf("schemas requires --config with a server section")
		formatter.Error("E_CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "load config", err)
	}

	db, err := conn.Open(cfg.Server)
	if err != nil {
		formatter.Error("E_CONNECT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "connect", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	schemas, err := conn.Schemas(ctx, db, cfg.Server.Catalog)
	if err != nil {
		formatter.Error("E_SYNC", err.Error(), nil)
		return WrapExitError(ExitFailure, "enumerate schemas", err)
	}
	formatter.VerboseLog("found %d schema(s) in %s", len(schemas), cfg.Server.Catalog)

	result := SchemaSyncResult{Catalog: cfg.Server.Catalog}
	for _, schema := range schemas {
		entry := SchemaEntry{Name: schema}
		if withTables {
			tables, err := conn.Tables(ctx, db, cfg.Server.Catalog, schema)
			if err != nil {
				formatter.Error("E_SYNC", err.Error(), nil)
				return WrapExitError(ExitFailure, "enumerate tables in "+schema, err)
			}
			entry.Tables = tables
		}
		result.Schemas = append(result.Schemas, entry)
	}

	return formatter.Success(result)
}
