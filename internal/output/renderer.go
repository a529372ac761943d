package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/atikulmunna/loglens/internal/aggregator"
)

const (
	reportTitle = "📊 Log Analysis Report"
	noEntries   = "No log entries found."
	ruleWidth   = 45
)

// Renderer writes analysis results to an output stream.
type Renderer interface {
	Render(stats aggregator.Stats) error
	RenderEmpty() error
}

// ---------------------------------------------------------------------------
// Text Renderer
// ---------------------------------------------------------------------------

var _ Renderer = (*TextRenderer)(nil)

// TextRenderer prints the report as plain text, with styled headings when the
// output is a color terminal.
type TextRenderer struct {
	w       io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
}

// NewTextRenderer returns a Renderer writing to w. With color false, or when w
// is not a terminal, no escape sequences are emitted.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &TextRenderer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // cyan
		heading: r.NewStyle().Bold(true),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")), // red
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),            // gray
	}
}

func (r *TextRenderer) Render(stats aggregator.Stats) error {
	var b bytes.Buffer

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.title.Render(reportTitle))
	fmt.Fprintln(&b, r.muted.Render(strings.Repeat("=", ruleWidth)))
	fmt.Fprintf(&b, "Total Requests : %d\n", stats.Total)
	fmt.Fprintf(&b, "Unique IPs     : %d\n", stats.UniqueIPs)

	r.section(&b, "Top IPs:")
	for _, c := range stats.TopIPs {
		fmt.Fprintf(&b, "  %-18s %d requests\n", c.Value, c.N)
	}

	r.section(&b, "Status Codes:")
	for _, c := range stats.StatusCodes {
		fmt.Fprintf(&b, "  HTTP %s: %d\n", c.Value, c.N)
	}

	r.section(&b, "HTTP Methods:")
	for _, c := range stats.Methods {
		fmt.Fprintf(&b, "  %-8s %d\n", c.Value, c.N)
	}

	if len(stats.TopPaths) > 0 {
		r.section(&b, "Top Paths:")
		for _, c := range stats.TopPaths {
			fmt.Fprintf(&b, "  %-24s %d requests\n", c.Value, c.N)
		}
	}

	if len(stats.Errors) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, r.warn.Render(fmt.Sprintf("⚠️  Errors (%d):", len(stats.Errors))))
		for _, e := range stats.Errors {
			fmt.Fprintf(&b, "  %s -> %s %s [%s]\n", e.IP, e.Method, e.Path, e.Status)
		}
	}

	_, err := r.w.Write(b.Bytes())
	return err
}

// RenderEmpty reports that the input held no parseable entries.
func (r *TextRenderer) RenderEmpty() error {
	_, err := fmt.Fprintln(r.w, noEntries)
	return err
}

func (r *TextRenderer) section(b *bytes.Buffer, name string) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, r.heading.Render(name))
}
