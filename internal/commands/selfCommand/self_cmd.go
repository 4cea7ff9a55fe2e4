package selfcommand

import (
	"github.com/spf13/cobra"

	versioncommand "github.com/redjax/whoami/internal/commands/versionCommand"
)

// NewSelfCommand creates the 'self' parent command
func NewSelfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Information about this whoami CLI",
		Long:  "Self-inspection operations for whoami, e.g. show the build and repository info.",
	}

	// Attach 'info' as a subcommand
	cmd.AddCommand(NewPackageInfoCommand())
	// Attach 'version' as a subcommand
	cmd.AddCommand(versioncommand.NewVersionCommand())

	return cmd
}
