// Package edfdur provides public constants for scripts and tools that
// invoke the edfdur command.
package edfdur

// Exit codes returned by the edfdur CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the report was printed.
	ExitSuccess = 0

	// ExitFailure indicates an unexpected runtime failure.
	ExitFailure = 1

	// ExitConfigError indicates a bad flag, config file or env file.
	ExitConfigError = 2

	// ExitSoftware indicates the batch was stopped because an input file does
	// not exist or a list file could not be opened. Matches sysexits EX_SOFTWARE.
	ExitSoftware = 70
)
