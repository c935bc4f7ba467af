package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print one slice of the gathered facts, i.e. show platform.",
		Long: `Print facts and debug data.

Show the platform report, network state, raw configuration tree keys, and the
key table of the active platform profile.

Run sysfacts show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewPlatformCmd())
	showCmd.AddCommand(NewShowNetCmd())
	showCmd.AddCommand(NewKeyCmd())
	showCmd.AddCommand(NewConstantsCmd())

	return showCmd
}
