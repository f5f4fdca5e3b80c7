package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Level tags a reported line.
type Level int

// Levels, in the order they usually appear in a run.
const (
	LevelInfo Level = iota
	LevelSuccess
	LevelSkip
	LevelWarning
	LevelError
	LevelMissing
)

var tags = map[Level]string{
	LevelInfo:    "[INFO]",
	LevelSuccess: "[ OK ]",
	LevelSkip:    "[SKIP]",
	LevelWarning: "[WARN]",
	LevelError:   "[FAIL]",
	LevelMissing: "[MISS]",
}

// Tag returns the bracketed tag printed for l.
func (l Level) Tag() string {
	return tags[l]
}

// Reporter prints tagged lines to a writer.
type Reporter struct {
	w       io.Writer
	styles  map[Level]lipgloss.Style
	heading lipgloss.Style
}

// New returns a Reporter writing to w. Colors are enabled only when w is a
// terminal.
func New(w io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	styles := map[Level]lipgloss.Style{
		LevelInfo:    renderer.NewStyle().Foreground(lipgloss.Color("39")),
		LevelSuccess: renderer.NewStyle().Foreground(lipgloss.Color("42")),
		LevelSkip:    renderer.NewStyle().Foreground(lipgloss.Color("245")),
		LevelWarning: renderer.NewStyle().Foreground(lipgloss.Color("214")),
		LevelError:   renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		LevelMissing: renderer.NewStyle().Foreground(lipgloss.Color("214")),
	}
	return &Reporter{
		w:       w,
		styles:  styles,
		heading: renderer.NewStyle().Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Line prints one tagged line at level l.
func (r *Reporter) Line(l Level, format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s %s\n", r.styles[l].Render(l.Tag()), fmt.Sprintf(format, args...))
}

// Info prints an [INFO] line.
func (r *Reporter) Info(format string, args ...interface{}) { r.Line(LevelInfo, format, args...) }

// Success prints an [ OK ] line.
func (r *Reporter) Success(format string, args ...interface{}) { r.Line(LevelSuccess, format, args...) }

// Skip prints a [SKIP] line.
func (r *Reporter) Skip(format string, args ...interface{}) { r.Line(LevelSkip, format, args...) }

// Warn prints a [WARN] line.
func (r *Reporter) Warn(format string, args ...interface{}) { r.Line(LevelWarning, format, args...) }

// Error prints a [FAIL] line.
func (r *Reporter) Error(format string, args ...interface{}) { r.Line(LevelError, format, args...) }

// Missing prints a [MISS] line.
func (r *Reporter) Missing(format string, args ...interface{}) { r.Line(LevelMissing, format, args...) }

// Heading prints a bold section title preceded by a blank line.
func (r *Reporter) Heading(title string) {
	fmt.Fprintf(r.w, "\n%s\n", r.heading.Render(title))
}

// Plain prints an untagged line.
func (r *Reporter) Plain(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "%s\n", fmt.Sprintf(format, args...))
}

// Detail prints an indented, untagged continuation line.
func (r *Reporter) Detail(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "       %s\n", fmt.Sprintf(format, args...))
}
