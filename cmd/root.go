// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	"github.com/redjax/whoami/internal/commands/getCommand"
	selfcommand "github.com/redjax/whoami/internal/commands/selfCommand"
	"github.com/redjax/whoami/internal/commands/showCommand"
	versioncommand "github.com/redjax/whoami/internal/commands/versionCommand"
	"github.com/redjax/whoami/internal/config"
	"github.com/redjax/whoami/internal/logging"
)

// NewRootCmd builds the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	// A path to a file to load configuration from
	var cfgFile string

	rootCmd := &cobra.Command{
		// The command you run to call the compiled binary
		Use: "whoami",
		// A short description of what the command does
		Short: "Print facts about the current user and machine.",
		// A longer description for the command
		Long: `Identity facts about the local machine: real name, username, device name,
hostname, distro, desktop environment, platform, architecture and languages.

Run without a subcommand to print every fact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			log := logging.New(cmd.ErrOrStderr(), cfg.Debug)
			log.WithField("root", cfg.Root).WithField("format", cfg.Format).Debug("config loaded")

			cmd.SetContext(app.WithApp(cmd.Context(), app.New(cfg, log)))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCommand.PrintFacts(cmd, nil)
		},
	}

	// Add flags to the CLI's root command, making them 'global'
	defaults := config.Default()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json, yaml, toml or env)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("root", defaults.Root, "Directory to read OS records like etc/os-release from")
	rootCmd.PersistentFlags().StringP("format", "o", defaults.Format, "Output format: text, json or yaml")

	// Add other CLI subcommands
	rootCmd.AddCommand(getCommand.NewGetCmd())
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(selfcommand.NewSelfCommand())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	return rootCmd
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(NewRootCmd().Execute())
}
