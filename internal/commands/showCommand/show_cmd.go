package showCommand

import (
	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show commands print information in the selected domain, i.e. show facts.",
		Long: `Print information about this machine.

Show the identity facts, host hardware details, network interfaces, clock,
or distribution release info.

Run whoami show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewFactsCmd())
	showCmd.AddCommand(NewShowHostCmd())
	showCmd.AddCommand(NewShowNetCmd())
	showCmd.AddCommand(NewShowTimeCmd())
	showCmd.AddCommand(NewShowReleaseCmd())

	return showCmd
}
