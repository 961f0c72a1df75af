package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatError renders a CLIError with ANSI colors for terminal display.
// Returns an empty string for a nil error.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	heading := color.New(color.FgRed, color.Bold).Sprint(err.Category.String())
	return format(err, heading)
}

// FormatErrorPlain renders a CLIError without colors.
// Returns an empty string for a nil error.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, err.Category.String())
}

// FormatSimpleError renders any error under a category heading, without
// usage or remediation sections. Returns an empty string for a nil error.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", category.String(), err.Error())
}

func format(err *CLIError, heading string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", heading, err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage:\n  %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  - %s\n", step)
		}
	}

	return b.String()
}

// PrintError writes a formatted CLIError to stderr, using colors only when
// stderr is a terminal. A nil error prints nothing.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted CLIError to w. Colors are used only when
// writing to a terminal. A nil error writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}
