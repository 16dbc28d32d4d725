// SPDX-License-Identifier: MPL-2.0

package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 12

var (
	stepStyle    = lipgloss.NewStyle().Bold(true).Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	cleanupStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Label selects the style of a file line.
type Label int

// File line labels.
const (
	LabelOk Label = iota
	LabelWarning
	LabelError
)

// Printer is a serialized sink for progress output.
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	step  int
	steps int
	done  int
	total int
}

// New creates a printer announcing steps numbered up to steps.
// A nil writer discards everything.
func New(w io.Writer, steps int) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w, steps: steps}
}

// Bold highlights a value inside a step message.
func Bold(v any) string {
	return boldStyle.Render(fmt.Sprint(v))
}

// Step prints the next numbered step.
func (p *Printer) Step(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.step++
	marker := stepStyle.Render(fmt.Sprintf("[ %d/%d ]", p.step, p.steps))
	fmt.Fprintf(p.w, "%s %s\n", marker, fmt.Sprintf(format, args...))
}

// Start resets the file counter for a batch of total files.
func (p *Printer) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = 0
	p.total = total
}

// File prints the result line for one analyzed file.
func (p *Printer) File(label Label, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done++
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", p.done, p.total))
	fmt.Fprintf(p.w, "%s %s %s\n", renderLabel(label), counter, path)
}

// Finished prints the closing line with the elapsed time.
func (p *Printer) Finished(elapsed time.Duration) {
	p.Step("Finished in %s", elapsed.Round(time.Millisecond))
}

// Cleanup notes the removal of a temporary file.
func (p *Printer) Cleanup(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\n%s\n", cleanupStyle.Render("Cleaning up temporary file "+path))
}

func renderLabel(label Label) string {
	var (
		text  string
		style lipgloss.Style
	)
	switch label {
	case LabelWarning:
		text, style = "Warning", warningStyle
	case LabelError:
		text, style = "Error", errorStyle
	default:
		text, style = "Ok", okStyle
	}
	return style.Render(fmt.Sprintf("%*s", labelWidth, text))
}
