package cli

import (
	"fmt"

	"github.com/cperrin88/chmodcalc/pkg/errors"
	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

// Build information. Overridden at link time with -ldflags -X.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var constraint string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for chmodcalc.

With --check, exit with an error unless the running version satisfies the
given constraint (e.g. ">= 0.1, < 1.0").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if constraint != "" {
				return checkVersion(Version, constraint)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "chmodcalc version %s\n", Version)
			_, _ = fmt.Fprintf(out, "Build date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Git commit: %s\n", GitCommit)
			return nil
		},
	}

	cmd.Flags().StringVar(&constraint, "check", "", "fail unless the version satisfies this constraint")

	return cmd
}

func checkVersion(current, constraint string) error {
	v, err := goversion.NewVersion(current)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", current)
	}
	c, err := goversion.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "invalid version constraint %q", constraint)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", errors.ErrVersionConstraint, v, c)
	}
	return nil
}
