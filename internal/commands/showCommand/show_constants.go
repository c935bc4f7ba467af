package showCommand

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/commands"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	sysctlservice "github.com/redjax/sysfacts/internal/services/sysctlService"
)

func NewConstantsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Show the key table of the platform profile",
		Long: `Show which configuration tree key answers each fact, the interface names the
Wi-Fi heuristics use, and the known keys of the profile's family with their
value kinds. When the facts come from the in-memory host tree, its nodes are
listed too. Pass --all to list every known profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				profiles := platformservice.Profiles()
				for _, id := range platformservice.ProfileIDs() {
					writeProfile(cmd.OutOrStdout(), profiles[id])
					writeKnownKeys(cmd.OutOrStdout(), profiles[id])
				}
				return nil
			}

			svc, err := commands.NewService(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeProfile(out, svc.Profile())
			writeKnownKeys(out, svc.Profile())
			if tree, ok := svc.Kernel().(*sysctlservice.Tree); ok {
				writeTreeNodes(out, tree)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every known profile")
	return cmd
}

func writeProfile(w io.Writer, p platformservice.Profile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s (%s)", p.Description, p.ID))
	t.AppendHeader(table.Row{"Fact", "Key"})

	for _, f := range p.Facts() {
		t.AppendRow(table.Row{f, p.Keys[f]})
	}

	t.AppendSeparator()
	t.AppendRow(table.Row{"wifi method", p.WiFi.Method})
	t.AppendRow(table.Row{"wifi interface", p.WiFi.Interface})
	if p.WiFi.AuxInterface != "" {
		t.AppendRow(table.Row{"wifi aux interface", p.WiFi.AuxInterface})
	}
	if p.Tethering {
		t.AppendRow(table.Row{"tether match", p.WiFi.TetherMatch})
	}
	if p.SSID != nil {
		t.AppendRow(table.Row{"ssid command", p.SSID.Command})
	}

	t.Render()
}

func writeKnownKeys(w io.Writer, p platformservice.Profile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("Known keys (%s)", p.Family))
	t.AppendHeader(table.Row{"Name", "Path", "Kind", "Unit"})

	for _, wk := range p.KnownKeys() {
		path := "resolved by name"
		if wk.Path != nil {
			path = sysctlservice.KeyPath(wk.Path).String()
		}
		t.AppendRow(table.Row{wk.Name, path, wk.Kind, wk.Unit})
	}

	t.Render()
}

func writeTreeNodes(w io.Writer, tree *sysctlservice.Tree) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Host tree nodes")
	t.AppendHeader(table.Row{"Path", "Name"})

	for _, n := range tree.Nodes() {
		t.AppendRow(table.Row{n.Path, n.Name})
	}

	t.Render()
}
