package cli

import (
	"fmt"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/spf13/cobra"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	var decimal bool

	cmd := &cobra.Command{
		Use:   "parse MODE...",
		Short: "Decode file modes",
		Long: `Decode one or more file modes and show every representation.

A MODE is either a 10-character ls-style string (e.g. drwxr-xr-x) or a
number. Numbers are read as octal (e.g. 0755, 100644) unless --decimal is
given or decimal_input is set in the configuration.`,
		Example: `  chmodcalc parse 4755
  chmodcalc parse -o table drwxrwxrwt
  chmodcalc parse --decimal 33188`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, decimal, cmd.Flags().Changed("decimal"))
		},
	}

	cmd.Flags().BoolVar(&decimal, "decimal", false, "read numeric modes as base 10")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, decimal, decimalSet bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !decimalSet {
		decimal = cfg.Settings.DecimalInput
	}

	modes := make([]filemode.FileMode, 0, len(args))
	for _, arg := range args {
		mode, err := decodeInput(arg, decimal)
		if err != nil {
			return fmt.Errorf("failed to parse '%s': %w", arg, err)
		}
		modes = append(modes, mode)
	}

	r := newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput)
	return r.modes(args, modes, cfg.Settings.OctalDigits)
}
