package errors

import (
	"fmt"
	"strings"
)

// FormatUserError returns a user-friendly error message with actionable
// guidance. It examines the error chain and provides context-appropriate
// help text. The result goes to stderr; stdout stays reserved for paths.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	// Check for ConfigError
	var configErr *ConfigError
	if As(err, &configErr) {
		return formatConfigError(configErr)
	}

	// Check for NoMatchError
	var nmErr *NoMatchError
	if As(err, &nmErr) {
		return formatNoMatchError(nmErr)
	}

	if Is(err, ErrNoProjects) {
		var b strings.Builder
		b.WriteString("No projects found in configured scan paths.\n")
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check scan_paths in ~/.config/pj/config.toml\n")
		b.WriteString("  • Run 'pj --init-config' to generate a default config\n")
		return b.String()
	}

	if Is(err, ErrNoPreviousDir) {
		return "No previous directory recorded. Jump somewhere first, then 'pj -' bounces back."
	}

	if Is(err, ErrCancelled) {
		return "Cancelled."
	}

	// Default: return the error message as-is
	return err.Error()
}

// formatConfigError formats a ConfigError with actionable guidance.
func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/pj/config.toml\n")
	b.WriteString("  • Run 'pj --init-config' to regenerate the defaults\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatNoMatchError formats a NoMatchError with a hint about listing.
func formatNoMatchError(err *NoMatchError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "No project matches pattern %q\n", err.Pattern)
	b.WriteString("\nRun 'pj --list' to see every discovered project.")

	return b.String()
}
