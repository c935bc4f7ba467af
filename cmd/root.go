// The root command for the CLI.
// Running it bare prints the fact report; subcommands print slices of it.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/commands"
	"github.com/redjax/sysfacts/internal/commands/showCommand"
	"github.com/redjax/sysfacts/internal/config"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	reportservice "github.com/redjax/sysfacts/internal/services/reportService"
	"github.com/redjax/sysfacts/internal/utils/spinner"
	"github.com/redjax/sysfacts/internal/utils/strutils"
	"github.com/redjax/sysfacts/internal/version"
)

// NewRootCmd builds the cobra root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var (
		// A path to a file to load configuration from
		cfgFile string
		// For enabling debug logging with --debug/-D
		debug bool
	)

	rootCmd := &cobra.Command{
		Use:   "sysfacts",
		Short: "Report host facts from the kernel configuration tree.",
		Long: `Query the kernel configuration tree (sysctl on Apple platforms, /proc/sys and
friends elsewhere) and print hostname, OS, CPU, memory and Wi-Fi facts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			setupLogging(settings.Debug || debug)

			if !slices.Contains(reportservice.Formats(), strutils.Fold(settings.Format)) {
				return fmt.Errorf("%w: %q (known: %s)", reportservice.ErrUnknownFormat, settings.Format, strings.Join(reportservice.Formats(), ", "))
			}
			if _, err := platformservice.ProfileByID(settings.Platform); err != nil {
				return err
			}

			cmd.SetContext(config.WithSettings(cmd.Context(), settings))
			return nil
		},
		RunE: runReport,
	}

	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json, toml or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("platform", "", fmt.Sprintf("platform profile, detected when empty (%s)", strings.Join(platformservice.ProfileIDs(), ", ")))
	rootCmd.PersistentFlags().String("format", reportservice.FormatText, fmt.Sprintf("output format (%s)", strings.Join(reportservice.Formats(), ", ")))
	rootCmd.PersistentFlags().StringSlice("section", nil, "only print these report sections (can be repeated)")

	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(version.NewVersionCommand())

	return rootCmd
}

// Execute the root Cobra command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runReport(cmd *cobra.Command, args []string) error {
	settings := commands.Settings(cmd)

	svc, err := commands.NewServiceFromSettings(settings)
	if err != nil {
		return err
	}

	stop := func() {}
	if settings.Report.Spinner {
		stop = spinner.StartSpinner(os.Stderr, "Gathering facts")
	}
	info := svc.GatherPlatformInfo()
	stop()

	info, err = reportservice.FilterSections(info, settings.Sections)
	if err != nil {
		return err
	}

	return reportservice.Render(cmd.OutOrStdout(), info, reportservice.Options{
		Format:   settings.Format,
		MaxWidth: settings.Report.MaxWidth,
	})
}
