package reportservice

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
)

// renderText prints each section as a heading followed by "Label: value"
// lines. Headings are only styled when w is a colour capable terminal.
func renderText(w io.Writer, info *platformservice.PlatformInfo, maxWidth int) error {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

	for i, sec := range info.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, heading.Render(sec.Title)); err != nil {
			return err
		}

		for _, f := range sec.Fields {
			value := FormatValue(f)
			if maxWidth > 0 {
				value = runewidth.Truncate(value, maxWidth, "…")
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", f.Label, value); err != nil {
				return err
			}
		}
	}

	return nil
}
