package reportservice

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
)

func renderTable(w io.Writer, info *platformservice.PlatformInfo) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Platform: " + info.Profile)
	t.AppendHeader(table.Row{"Section", "Fact", "Value"})

	for i, sec := range info.Sections {
		if i > 0 {
			t.AppendSeparator()
		}
		for _, f := range sec.Fields {
			t.AppendRow(table.Row{sec.Title, f.Label, FormatValue(f)})
		}
	}

	t.Render()
	return nil
}
