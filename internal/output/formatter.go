// Package output formats user-facing CLI output. Diagnostics go through
// internal/log on stderr; everything here is meant for stdout.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
)

// Printer writes formatted output to W.
type Printer struct {
	W io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{W: w}
}

// JSON writes data as indented JSON.
func (p *Printer) JSON(data any) error {
	enc := json.NewEncoder(p.W)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// YAML writes data as YAML with two-space indentation.
func (p *Printer) YAML(data any) error {
	enc := yaml.NewEncoder(p.W)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// Table writes rows under headers with columns padded to the widest cell.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		out := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			out[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.TrimRight(strings.Join(out, "  "), " ")
	}

	_, _ = headerColor.Fprintln(p.W, line(headers))
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(p.W, strings.Join(sep, "  "))
	for _, row := range rows {
		fmt.Fprintln(p.W, line(row))
	}
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	_, _ = successColor.Fprintf(p.W, "✓ "+format+"\n", args...)
}

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) {
	_, _ = errorColor.Fprintf(p.W, "✗ "+format+"\n", args...)
}

// Warn prints a warning message.
func (p *Printer) Warn(format string, args ...any) {
	_, _ = warnColor.Fprintf(p.W, "! "+format+"\n", args...)
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	_, _ = infoColor.Fprintf(p.W, "→ "+format+"\n", args...)
}
