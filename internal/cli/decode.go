package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/prestoql/internal/session"
	"github.com/roach88/prestoql/internal/temporal"
)

// DecodeResult holds the decode command's output payload.
type DecodeResult struct {
	WireType   string `json:"wire_type"`
	NativeType string `json:"native_type"`
	Raw        string `json:"raw"`
	Decoded    string `json:"decoded,omitempty"`
	Absent     bool   `json:"absent"`
}

// renderText prints the kind-tagged value, or "absent" for the null/
// unparseable outcome.
func (r DecodeResult) renderText() string {
	if r.Absent {
		return "absent"
	}
	return r.Decoded
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		nativeType string
		zoneID     string
	)

	cmd := &cobra.Command{
		Use:   "decode <raw-value>",
		Short: "Decode a raw result cell as a temporal value",
		Long: `Decode a raw textual result cell the way the inbound marshaller would,
given the column's native Presto type and an optional session zone.

Useful for reproducing zone-shift bugs from a result dump without a live
connection: the session zone given with --session-zone plays the role of
the zone read from the live connection.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, nativeType, zoneID, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&nativeType, "native-type", "timestamp", "column's native Presto type name")
	cmd.Flags().StringVar(&zoneID, "session-zone", "", "session zone of the connection that produced the value")

	return cmd
}

func runDecode(opts *RootOptions, nativeType, zoneID, raw string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	wire, ok := temporal.WireTypeForName(nativeType)
	if !ok {
		err := fmt.Errorf("native type %q is not a temporal type", nativeType)
		formatter.Error("E_TYPE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolve type", err)
	}
	connZone := session.LoadZone(zoneID)
	if zoneID != "" && connZone == nil {
		err := fmt.Errorf("unknown session zone %q", zoneID)
		formatter.Error("E_ZONE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolve zone", err)
	}

	value, ok, err := temporal.Decode(wire, nativeType, raw, connZone)
	if err != nil {
		formatter.Error("E_DECODE", err.Error(), nil)
		return WrapExitError(ExitFailure, "decode", err)
	}

	result := DecodeResult{
		WireType:   wire.String(),
		NativeType: nativeType,
		Raw:        raw,
		Absent:     !ok,
	}
	if ok {
		result.Decoded = describeValue(value)
	}
	return formatter.Success(result)
}

// describeValue renders a decoded value with its kind tag, so the output
// distinguishes a zone-naive 14:30 from an offset 14:30.
func describeValue(v temporal.Value) string {
	switch val := v.(type) {
	case temporal.ZonedDateTime:
		return fmt.Sprintf("zoned %s", val.T.Format("2006-01-02 15:04:05.000 MST"))
	case temporal.OffsetDateTime:
		return fmt.Sprintf("offset %s", val.T.Format("2006-01-02 15:04:05.000 -07:00"))
	case temporal.LocalDateTime:
		return fmt.Sprintf("local %s", val.T.Format("2006-01-02 15:04:05.000"))
	case temporal.LocalTime:
		return fmt.Sprintf("local time %s", val)
	case temporal.OffsetTime:
		return fmt.Sprintf("offset time %s", val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
