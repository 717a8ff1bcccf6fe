package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cperrin88/chmodcalc/internal/logger"
	"github.com/cperrin88/chmodcalc/pkg/errors"
	"github.com/cperrin88/chmodcalc/pkg/script"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var (
		vars  []string
		printNames []string
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a Tengo script with the filemode module",
		Long: `Run a Tengo script. Scripts can import the "filemode" module as well as
the fmt, text, math, json and enum standard modules. Use - to read the
script from standard input.

Variables passed with --var are defined as string globals. After the
script finishes, the globals named with --print are written out, or all
globals when --print is not given. A non-empty err global fails the run.`,
		Example: `  chmodcalc run check.tengo --var mode=0755 --print symbolic
  echo 'fm := import("filemode"); out := fm.to_string(fm.parse_octal("4755"))' | chmodcalc run - --print out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0], vars, printNames)
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "define a global as NAME=VALUE (repeatable)")
	cmd.Flags().StringSliceVar(&printNames, "print", nil, "globals to print after the run")

	return cmd
}

func runScript(cmd *cobra.Command, path string, rawVars, names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vars, err := parseVars(rawVars)
	if err != nil {
		return err
	}

	src, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	logger.Debug("Running script", logger.Fields{"path": path, "vars": len(vars)})
	globals, err := script.NewExecutor().Run(cmd.Context(), src, vars)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		for name := range globals {
			if _, isVar := vars[name]; !isVar {
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	selected := make(map[string]interface{}, len(names))
	for _, name := range names {
		v, ok := globals[name]
		if !ok {
			return fmt.Errorf("%w: script did not define '%s'", errors.ErrInvalidVariable, name)
		}
		selected[name] = v
	}

	r := newRenderer(cmd.OutOrStdout(), cfg.Settings.OutputFormat, cfg.Settings.ColorOutput)
	switch r.format {
	case FormatJSON:
		return r.json(selected)
	case FormatYAML:
		return r.yaml(selected)
	default:
		for _, name := range names {
			_, _ = fmt.Fprintf(r.out, "%s = %v\n", name, selected[name])
		}
		return nil
	}
}

func parseVars(raw []string) (map[string]interface{}, error) {
	vars := make(map[string]interface{}, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: '%s', expected NAME=VALUE", errors.ErrInvalidVariable, kv)
		}
		vars[name] = value
	}
	return vars, nil
}

func readScript(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		return src, errors.Wrap(err, "failed to read script from stdin")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	return src, nil
}
