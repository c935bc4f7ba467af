package showCommand

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/commands"
	"github.com/redjax/sysfacts/internal/config"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	reportservice "github.com/redjax/sysfacts/internal/services/reportService"
)

func NewShowNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "network",
		Aliases: []string{"net"},
		Short:   "Show network interfaces and Wi-Fi state",
		Long: `Shows network interfaces, the active interface records the Wi-Fi heuristics count, and the networking section of the report.

With --format json or yaml only the networking section is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := commands.NewService(cmd)
			if err != nil {
				return err
			}
			return showNetwork(cmd.OutOrStdout(), svc, platformservice.ListNetworkInterfaces, commands.Settings(cmd))
		},
	}

	return cmd
}

func showNetwork(out io.Writer, svc *platformservice.Service, list func() ([]platformservice.NetworkInterface, error), settings *config.Settings) error {
	if !reportservice.IsStructured(settings.Format) {
		ifaces, err := list()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, platformservice.FormatNetworkInterfaces(ifaces))
		fmt.Fprintf(out, "Active interface records: %s\n\n", strings.Join(svc.EnumerateActiveInterfaces(), ", "))
	}

	info, err := reportservice.FilterSections(svc.GatherPlatformInfo(), []string{platformservice.SectionNetworking})
	if err != nil {
		return err
	}
	return reportservice.Render(out, info, reportservice.Options{
		Format:   settings.Format,
		MaxWidth: settings.Report.MaxWidth,
	})
}
