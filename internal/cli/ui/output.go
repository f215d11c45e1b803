// Package ui holds the terminal output helpers shared by the weft commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures a formatted error message.
type ErrorOptions struct {
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError renders a standardized error block.
//
// Example output:
//
//	✗ UNSUPPORTED PLATFORM: vue
//	   Supported platforms: nextjs, gatsby, react
//
//	   → weft create --help
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	bodyColor := color.New(color.FgYellow)
	helpColor := color.New(color.FgCyan)
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
		helpColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "✗ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "✗ %s\n", opts.Problem)
	}

	for _, s := range opts.Suggestions {
		bodyColor.Fprintf(&b, "   %s\n", s)
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			helpColor.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to w.
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess renders a success line.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}
