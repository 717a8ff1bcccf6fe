package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/cperrin88/chmodcalc/pkg/inspect"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newInspector builds the archive inspector used by the inspect command.
var newInspector = func() inspect.Inspector { return inspect.NewManager() }

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect ARCHIVE",
		Short: "Show the file modes stored in an archive",
		Long: `List every entry of a tar, zip or other supported archive with its
mode in symbolic and octal form. Compressed archives are detected
automatically.`,
		Example: "  chmodcalc inspect release.tar.gz",
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := newInspector().Entries(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	r := newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput)
	digits := cfg.Settings.OctalDigits
	switch r.format {
	case FormatJSON:
		return r.json(entries)
	case FormatYAML:
		return r.yaml(entries)
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.AppendHeader(table.Row{"Mode", "Octal", "Size", "Path"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Mode.String(), filemode.NumberToOctal(e.Mode.Decimal(), digits), humanize.Bytes(uint64(e.Size)), entryName(e)})
		}
		t.AppendFooter(table.Row{"", "", humanize.Bytes(uint64(totalSize(entries))), fmt.Sprintf("%d entries", len(entries))})
		t.Render()
		return nil
	default:
		tabWriter := tabwriter.NewWriter(r.out, 0, 0, TabWidth, ' ', 0)
		for _, e := range entries {
			_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\t%s\n",
				r.colorize(e.Mode.String()), filemode.NumberToOctal(e.Mode.Decimal(), digits), humanize.Bytes(uint64(e.Size)), entryName(e))
		}
		return tabWriter.Flush()
	}
}

func entryName(e inspect.Entry) string {
	if e.LinkTarget != "" {
		return e.Path + " -> " + e.LinkTarget
	}
	return e.Path
}

func totalSize(entries []inspect.Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
