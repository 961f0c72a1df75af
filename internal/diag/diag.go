// Package diag collects structured, deduplicated warnings for one command
// invocation. A Collector is created when the command starts and discarded at
// exit; nothing in this package holds process-global state.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Kind identifies the configuration area a warning belongs to.
type Kind string

const (
	// KindConfig marks warnings about project configuration fields.
	KindConfig Kind = "config"
	// KindContext marks warnings about the injected context string.
	KindContext Kind = "context"
	// KindRules marks warnings about per-artifact rules entries.
	KindRules Kind = "rules"
	// KindSchema marks warnings about schema resolution.
	KindSchema Kind = "schema"
)

// Warning is a single structured diagnostic.
type Warning struct {
	Kind   Kind
	Field  string
	Detail string
}

// String renders the warning as a single line.
func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("[%s] %s", w.Kind, w.Detail)
	}
	return fmt.Sprintf("[%s] %s: %s", w.Kind, w.Field, w.Detail)
}

// Collector accumulates warnings and suppresses duplicates. Deduplication is
// keyed by the rendered warning text, so two warnings that read identically
// are reported once per Collector lifetime.
type Collector struct {
	out      io.Writer
	colorize bool
	seen     map[string]struct{}
	warnings []Warning
}

// NewCollector creates a Collector writing to out. Pass io.Discard to
// collect silently.
func NewCollector(out io.Writer) *Collector {
	return &Collector{
		out:  out,
		seen: make(map[string]struct{}),
	}
}

// EnableColor turns on colored warning output.
func (c *Collector) EnableColor() {
	c.colorize = true
}

// Warn records a warning if an identical one has not been seen. Returns true
// when the warning was newly recorded.
func (c *Collector) Warn(w Warning) bool {
	key := w.String()
	if _, dup := c.seen[key]; dup {
		return false
	}
	c.seen[key] = struct{}{}
	c.warnings = append(c.warnings, w)

	if c.out != nil {
		label := "Warning"
		if c.colorize {
			label = color.YellowString(label)
		}
		fmt.Fprintf(c.out, "%s: %s\n", label, key)
	}
	return true
}

// Warnf records a formatted warning with the given kind and field.
func (c *Collector) Warnf(kind Kind, field, format string, args ...any) bool {
	return c.Warn(Warning{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)})
}

// Warnings returns all recorded warnings in order.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Len returns the number of recorded warnings.
func (c *Collector) Len() int {
	return len(c.warnings)
}
