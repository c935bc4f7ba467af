package showCommand

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/commands"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	reportservice "github.com/redjax/sysfacts/internal/services/reportService"
	"github.com/redjax/sysfacts/internal/utils/strutils"
)

func NewPlatformCmd() *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show platform information. You can pass multiple --property <key> flags.",
		Long: fmt.Sprintf(`Show the full platform report, or selected fields of it.

Available properties for --property:
  - %s
`, strings.Join(platformservice.FieldKeys(), "\n  - ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := commands.NewService(cmd)
			if err != nil {
				return err
			}
			info := svc.GatherPlatformInfo()

			if len(properties) == 0 {
				settings := commands.Settings(cmd)
				info, err = reportservice.FilterSections(info, settings.Sections)
				if err != nil {
					return err
				}
				return reportservice.Render(cmd.OutOrStdout(), info, reportservice.Options{
					Format:   settings.Format,
					MaxWidth: settings.Report.MaxWidth,
				})
			}

			return printProperties(cmd, info, properties)
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific properties (can be repeated)")
	return cmd
}

func printProperties(cmd *cobra.Command, info *platformservice.PlatformInfo, properties []string) error {
	known := strutils.FoldSet(platformservice.FieldKeys())

	for _, prop := range properties {
		key := strutils.Fold(prop)
		if !known[key] {
			return fmt.Errorf("unknown property: %s", prop)
		}

		f, ok := info.Field(key)
		if !ok {
			// Not offered by this profile.
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, reportservice.Nil)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, reportservice.FormatValue(f))
	}
	return nil
}
