package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.Color("#08bdba")
	green  = lipgloss.Color("#42be65")
	pink   = lipgloss.Color("#ff7eb6")
	yellow = lipgloss.Color("#ee5396")
	blue   = lipgloss.Color("#78a9ff")
	muted  = lipgloss.Color("#525252")
	purple = lipgloss.Color("#be95ff")
	teal   = lipgloss.Color("#3ddbd9")
)

// Styles wraps the lipgloss styles for the application.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Path    lipgloss.Style
}

// NewStyles returns a new Styles struct with Oxocarbon-flavored defaults.
func NewStyles() *Styles {
	return &Styles{
		Header:  lipgloss.NewStyle().Foreground(purple).Bold(true),
		Success: lipgloss.NewStyle().Foreground(green),
		Error:   lipgloss.NewStyle().Foreground(pink),
		Warning: lipgloss.NewStyle().Foreground(yellow),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Accent:  lipgloss.NewStyle().Foreground(cyan),
		Path:    lipgloss.NewStyle().Foreground(teal),
	}
}

// Printer provides helper methods for printing formatted output.
type Printer struct {
	Styles *Styles
}

// NewPrinter creates a new Printer with default styles.
func NewPrinter() *Printer {
	return &Printer{Styles: NewStyles()}
}

var p = NewPrinter()

// PrintHeader prints a bold header message.
func (p *Printer) PrintHeader(msg string) {
	fmt.Println(p.Styles.Header.Render(msg))
}

// PrintSuccess prints a success message with a checkmark.
func (p *Printer) PrintSuccess(msg string) {
	fmt.Printf("%s %s\n", p.Styles.Success.Render("✔"), msg)
}

// PrintError prints an error message to stderr with a cross.
func (p *Printer) PrintError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", p.Styles.Error.Render("✘"), msg)
}

// PrintWarning prints a warning message with an exclamation.
func (p *Printer) PrintWarning(msg string) {
	fmt.Printf("%s %s\n", p.Styles.Warning.Render("⚠"), msg)
}

// PrintListItem prints a muted label with a value.
func (p *Printer) PrintListItem(label, value string) {
	fmt.Printf("%s: %s\n", p.Styles.Muted.Render(label), value)
}

// FormatPath formats a file or document path.
func (p *Printer) FormatPath(path string) string {
	return p.Styles.Path.Render(path)
}
