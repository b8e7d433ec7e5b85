package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const swatchWidth = 4

// swatcher renders colour blocks when the output is a terminal.
type swatcher struct {
	renderer *lipgloss.Renderer
	enabled  bool
}

func newSwatcher(w io.Writer, disabled bool) swatcher {
	return swatcher{
		renderer: lipgloss.NewRenderer(w),
		enabled:  !disabled && isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders hex as a block of background colour. Translucent steps are
// drawn with their opaque channels.
func (s swatcher) swatch(hex string) string {
	if !s.enabled {
		return ""
	}
	if len(hex) == 9 {
		hex = hex[:7]
	}
	return s.renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", swatchWidth))
}

// sample renders text in fg over bg.
func (s swatcher) sample(text, fg, bg string) string {
	if !s.enabled {
		return text
	}
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

// headers prepends a swatch column when swatches are on.
func (s swatcher) headers(h ...string) []string {
	if !s.enabled {
		return h
	}
	return append([]string{""}, h...)
}

// row prepends the swatch for hex when swatches are on.
func (s swatcher) row(hex string, cells ...string) []string {
	if !s.enabled {
		return cells
	}
	return append([]string{s.swatch(hex)}, cells...)
}

// table returns a Table with bold headers on terminals.
func (s swatcher) table(headers []string) *Table {
	t := NewTable(headers)
	if s.enabled {
		t.SetHeaderStyle(s.renderer.NewStyle().Bold(true))
	}
	return t
}
