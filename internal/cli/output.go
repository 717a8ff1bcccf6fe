package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cperrin88/chmodcalc/pkg/errors"
	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// renderer writes command results in the configured format.
type renderer struct {
	out    io.Writer
	format string
	color  bool
}

func newRenderer(out io.Writer, format string, colorOutput bool) *renderer {
	return &renderer{out: out, format: format, color: colorOutput}
}

// modeResult is one decoded input in structured output.
type modeResult struct {
	Input           string `json:"input" yaml:"input"`
	filemode.Record `yaml:",inline"`
}

var (
	typeColor  = color.New(color.FgBlue, color.Bold)
	userColor  = color.New(color.FgRed)
	groupColor = color.New(color.FgYellow)
	otherColor = color.New(color.FgGreen)
)

// colorize paints the type character and each triad of a symbolic string.
func (r *renderer) colorize(symbolic string) string {
	if !r.color || len(symbolic) != filemode.SymbolicLength {
		return symbolic
	}
	return typeColor.Sprint(symbolic[:1]) +
		userColor.Sprint(symbolic[1:4]) +
		groupColor.Sprint(symbolic[4:7]) +
		otherColor.Sprint(symbolic[7:])
}

// modes renders decoded modes. digits sets the octal padding.
func (r *renderer) modes(inputs []string, modes []filemode.FileMode, digits int) error {
	results := make([]modeResult, len(modes))
	for i, m := range modes {
		record := m.Record()
		record.Octal = filemode.NumberToOctal(record.Decimal, digits)
		results[i] = modeResult{Input: inputs[i], Record: record}
	}

	switch r.format {
	case FormatJSON:
		return r.json(results)
	case FormatYAML:
		return r.yaml(results)
	case FormatTable:
		for i, res := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(r.out)
			}
			r.modeTable(res)
		}
		return nil
	default:
		for _, res := range results {
			_, _ = fmt.Fprintf(r.out, "%s  %s  %s\n", r.colorize(res.Symbolic), res.Octal, res.Input)
		}
		return nil
	}
}

func (r *renderer) modeTable(res modeResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("%s  %s  (%d)", res.Symbolic, res.Octal, res.Decimal))
	t.AppendHeader(table.Row{"Class", "Read", "Write", "Execute"})
	for _, row := range []struct {
		name  string
		triad filemode.Triad
	}{
		{filemode.User.String(), res.User},
		{filemode.Group.String(), res.Group},
		{filemode.Other.String(), res.Other},
	} {
		t.AppendRow(table.Row{row.name, yesNo(row.triad.Read), yesNo(row.triad.Write), yesNo(row.triad.Execute)})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"special", enabledSpecial(res.Record), "", ""})
	t.Render()
}

func enabledSpecial(r filemode.Record) string {
	var names []string
	for _, f := range filemode.Flags() {
		if r.Special[f.String()] {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// lines writes plain values one per line, regardless of format for text and
// table, and as a list for json and yaml.
func (r *renderer) lines(values []string) error {
	switch r.format {
	case FormatJSON:
		return r.json(values)
	case FormatYAML:
		return r.yaml(values)
	default:
		for _, v := range values {
			_, _ = fmt.Fprintln(r.out, v)
		}
		return nil
	}
}

func (r *renderer) json(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *renderer) yaml(v interface{}) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml output")
	}
	return encoder.Close()
}
