// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components
	Kind      lipgloss.Style
	Anonymous lipgloss.Style
	Field     lipgloss.Style
	Extent    lipgloss.Style
	ErrorNode lipgloss.Style
	Missing   lipgloss.Style

	// Headings and summaries
	FilePath lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableNamedRow  lipgloss.Style
	TableAnonRow   lipgloss.Style
	TableLegend    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Kind:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Anonymous: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Field:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Extent:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ErrorNode: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Missing:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableNamedRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TableAnonRow:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Kind:           plain,
		Anonymous:      plain,
		Field:          plain,
		Extent:         plain,
		ErrorNode:      plain,
		Missing:        plain,
		FilePath:       plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableNamedRow:  plain,
		TableAnonRow:   plain,
		TableLegend:    plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TermWidth returns the writer's terminal width, or a sensible default
// when the writer is not a terminal.
func TermWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
