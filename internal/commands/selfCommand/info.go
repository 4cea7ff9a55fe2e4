package selfcommand

import (
	"github.com/redjax/whoami/internal/app"
	"github.com/redjax/whoami/internal/utils/render"
	"github.com/redjax/whoami/internal/version"

	"github.com/spf13/cobra"
)

// NewPackageInfoCommand creates the 'self info' command
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}

func showPackageInfo(cmd *cobra.Command, args []string) error {
	pkgInfo := version.GetPackageInfo()

	doc := render.Document{
		Title: "Package",
		Rows: []render.Row{
			{Label: "program", Value: pkgInfo.PackageName},
			{Label: "owner", Value: pkgInfo.RepoUser},
			{Label: "repository name", Value: pkgInfo.RepoName},
			{Label: "repository url", Value: pkgInfo.RepoUrl},
			{Label: "version", Value: pkgInfo.PackageVersion},
			{Label: "commit", Value: pkgInfo.PackageCommit},
			{Label: "release date", Value: pkgInfo.PackageReleaseDate},
		},
		Data: pkgInfo,
	}

	return render.Write(cmd.OutOrStdout(), app.FromCommand(cmd).Format(), doc)
}
