package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type flagInfo struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Mask  uint32 `json:"mask" yaml:"mask"`
	Octal string `json:"octal" yaml:"octal"`
}

// NewFlagsCmd creates the flags command.
func NewFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags",
		Short: "List special mode flags",
		Long: `List the setuid/setgid/sticky modifiers and the file type flags with
their bit masks. Socket, block device, symbolic link and whiteout are
combinations of the single type bits.`,
		Args: cobra.NoArgs,
		RunE: runFlags,
	}

	return cmd
}

func runFlags(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	infos := make([]flagInfo, 0, len(filemode.Flags()))
	for _, f := range filemode.Flags() {
		kind := "modifier"
		if f.IsType() {
			kind = "type"
		}
		infos = append(infos, flagInfo{
			Name:  f.String(),
			Kind:  kind,
			Mask:  f.Mask(),
			Octal: filemode.NumberToOctal(f.Mask(), 6),
		})
	}

	r := newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput)
	switch r.format {
	case FormatJSON:
		return r.json(infos)
	case FormatYAML:
		return r.yaml(infos)
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.AppendHeader(table.Row{"Flag", "Kind", "Mask"})
		for _, info := range infos {
			t.AppendRow(table.Row{info.Name, info.Kind, info.Octal})
		}
		t.Render()
		return nil
	default:
		tabWriter := tabwriter.NewWriter(r.out, 0, 0, TabWidth, ' ', 0)
		_, _ = fmt.Fprintln(tabWriter, "FLAG\tKIND\tMASK")
		for _, info := range infos {
			_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\n", info.Name, info.Kind, info.Octal)
		}
		return tabWriter.Flush()
	}
}
