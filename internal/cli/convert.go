package cli

import (
	"fmt"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/spf13/cobra"
)

// NewSymbolicCmd creates the symbolic command, which turns numeric modes into
// ls-style strings.
func NewSymbolicCmd() *cobra.Command {
	var decimal bool

	cmd := &cobra.Command{
		Use:     "symbolic NUMBER...",
		Aliases: []string{"sym"},
		Short:   "Convert numeric modes to ls-style strings",
		Long:    "Convert octal (or, with --decimal, base-10) modes to their 10-character ls -l form",
		Example: "  chmodcalc symbolic 0755 41777 120777",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("decimal") {
				decimal = cfg.Settings.DecimalInput
			}

			out := make([]string, 0, len(args))
			for _, arg := range args {
				mode, err := decodeNumber(arg, decimal)
				if err != nil {
					return fmt.Errorf("failed to convert '%s': %w", arg, err)
				}
				out = append(out, mode.String())
			}

			r := newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput)
			if r.format == FormatText || r.format == FormatTable {
				for i := range out {
					out[i] = r.colorize(out[i])
				}
			}
			return r.lines(out)
		},
	}

	cmd.Flags().BoolVar(&decimal, "decimal", false, "read modes as base 10")

	return cmd
}

// decodeNumber is decodeInput restricted to numbers, so a 10-digit octal
// string is never mistaken for a symbolic one.
func decodeNumber(arg string, decimal bool) (filemode.FileMode, error) {
	if filemode.IsSymbolic(arg) {
		return filemode.FileMode{}, fmt.Errorf("%w '%s': expected a number", filemode.ErrOctal, arg)
	}
	return decodeInput(arg, decimal)
}

// NewOctalCmd creates the octal command, which turns ls-style strings into
// zero-padded octal modes.
func NewOctalCmd() *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:     "octal SYMBOLIC...",
		Aliases: []string{"oct"},
		Short:   "Convert ls-style strings to octal modes",
		Long: `Convert 10-character ls -l strings to zero-padded octal modes.

Note that '-' in the type position sets no file type bits, so
-rw-r--r-- converts to 00644 rather than 100644.`,
		Example: `  chmodcalc octal drwxr-xr-x
  chmodcalc octal -- -rwsr-xr-x -rw-r--r--`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("digits") {
				digits = cfg.Settings.OctalDigits
			}

			out := make([]string, 0, len(args))
			for _, arg := range args {
				mode, err := filemode.ParseString(arg)
				if err != nil {
					return fmt.Errorf("failed to convert '%s': %w", arg, err)
				}
				out = append(out, filemode.NumberToOctal(mode.Decimal(), digits))
			}

			return newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput).lines(out)
		},
	}

	cmd.Flags().IntVar(&digits, "digits", filemode.OctalDigits, "minimum number of octal digits")

	return cmd
}
