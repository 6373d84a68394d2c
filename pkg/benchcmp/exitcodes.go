// Package benchcmp provides public constants for external tools integrating
// with the benchcmp command.
package benchcmp

// Exit codes returned by the benchcmp CLI.
// These constants allow scripts and CI jobs to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the comparison passed (possibly with warnings).
	ExitSuccess = 0

	// ExitFailure indicates a failed comparison or a runtime failure such as a
	// malformed output line.
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid tolerance file, bad flags, etc.).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error, such as a missing benchmark or test file.
	ExitEnvError = 3
)
