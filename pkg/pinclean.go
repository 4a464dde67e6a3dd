// Package pinclean holds application-level metadata shared by the CLI.
package pinclean

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is set by build flags to the build timestamp.
	Build = "n/a"
)
