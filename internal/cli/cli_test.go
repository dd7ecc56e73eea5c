package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	path := writeFile(t, "exprs.yaml", "expressions:\n  - kind: log10\n    column: amount\n")
	_, _, err := execute(t, "render", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRenderCommand_JSON(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
report_timezone: America/Denver
start_of_week: sunday
`)
	exprPath := writeFile(t, "exprs.yaml", `
expressions:
  - name: daily buckets
    kind: trunc:day
    column: created_at
    type: timestamp
`)

	out, _, err := execute(t, "render", exprPath, "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "America/Denver", data["report_zone"])
	assert.NotEmpty(t, data["invocation_id"])

	exprs, ok := data["expressions"].([]any)
	require.True(t, ok)
	require.Len(t, exprs, 1)
	first := exprs[0].(map[string]any)
	assert.Equal(t, "daily buckets", first["name"])
	assert.Equal(t,
		`date_trunc('day', ("created_at" AT TIME ZONE 'America/Denver'))`,
		first["sql"])
}

func TestRenderCommand_TextWithoutConfig(t *testing.T) {
	exprPath := writeFile(t, "exprs.yaml", `
expressions:
  - kind: trunc:day
    column: created_at
    type: timestamp
`)

	out, _, err := execute(t, "render", exprPath)
	require.NoError(t, err)

	// No report zone configured: no AT TIME ZONE wrapper.
	assert.Contains(t, out, "trunc:day:\n  date_trunc('day', \"created_at\")")
	assert.NotContains(t, out, "AT TIME ZONE")
}

func TestRenderCommand_UnknownKind(t *testing.T) {
	exprPath := writeFile(t, "exprs.yaml", `
expressions:
  - kind: median
    column: amount
`)

	out, _, err := execute(t, "render", exprPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E_REWRITE")
}

func TestRenderCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "render", "/nonexistent/exprs.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDecodeCommand_NaiveSessionUndo(t *testing.T) {
	// The session ran in Denver (UTC-7 in March before DST), so the naive
	// display value 05:00 denotes the UTC wall clock 12:00.
	out, _, err := execute(t,
		"decode", "2024-03-01 05:00:00.000",
		"--native-type", "timestamp",
		"--session-zone", "America/Denver",
		"--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "TIMESTAMP", data["wire_type"])
	assert.Equal(t, false, data["absent"])
	assert.Equal(t, "local 2024-03-01 12:00:00.000", data["decoded"])
}

func TestDecodeCommand_UnparseableIsAbsent(t *testing.T) {
	out, _, err := execute(t, "decode", "not-a-timestamp")
	require.NoError(t, err)
	assert.Equal(t, "absent\n", out)
}

func TestDecodeCommand_NonTemporalType(t *testing.T) {
	_, _, err := execute(t, "decode", "42", "--native-type", "bigint")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDecodeCommand_UnknownSessionZone(t *testing.T) {
	_, _, err := execute(t,
		"decode", "2024-03-01 05:00:00.000",
		"--session-zone", "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateCommand(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
report_timezone: America/Denver
start_of_week: monday
`)

	out, _, err := execute(t, "validate", cfgPath, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "America/Denver", data["report_timezone"])
	assert.Equal(t, "Monday", data["start_of_week"])
}

func TestValidateCommand_InvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "report_timezone: Mars/Olympus_Mons\n")

	out, _, err := execute(t, "validate", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "E_CONFIG")
}

func TestSchemasCommand_RequiresConfig(t *testing.T) {
	_, _, err := execute(t, "schemas")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestOutputFormatter_TextRendering(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out}

	// Payloads carrying their own text form render through it.
	require.NoError(t, f.Success(DecodeResult{Absent: true}))
	assert.Equal(t, "absent\n", out.String())

	out.Reset()
	require.NoError(t, f.Success(RenderResult{Expressions: []RenderedExpr{
		{Name: "daily buckets", Kind: "trunc:day", SQL: `date_trunc('day', "created_at")`},
		{Kind: "log10", SQL: `log10("amount")`},
	}}))
	assert.Equal(t,
		"daily buckets (trunc:day):\n  date_trunc('day', \"created_at\")\nlog10:\n  log10(\"amount\")\n",
		out.String())

	out.Reset()
	require.NoError(t, f.Success(SchemaSyncResult{Catalog: "hive", Schemas: []SchemaEntry{
		{Name: "sales", Tables: []string{"orders"}},
	}}))
	assert.Equal(t, "sales\n  orders\n", out.String())

	// Plain payloads keep their default formatting.
	out.Reset()
	require.NoError(t, f.Success("done"))
	assert.Equal(t, "done\n", out.String())
}

func TestOutputFormatter_VerboseToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut, Verbose: true}

	f.VerboseLog("resolved %d columns", 3)
	assert.Empty(t, out.String())
	assert.Equal(t, "resolved 3 columns\n", errOut.String())

	f.Verbose = false
	errOut.Reset()
	f.VerboseLog("suppressed")
	assert.Empty(t, errOut.String())
}
