package cli

// Default values for CLI flags and formatted output.
const (
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2

	// configSetArgs is the number of arguments expected by the config set command.
	configSetArgs = 2
)
