package showCommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
	"github.com/redjax/whoami/internal/utils/strutils"
)

func NewShowReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "release",
		Aliases: []string{"distro"},
		Short:   "Show distribution family and package manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.FromCommand(cmd)

			info, err := a.Service.Release()
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), a.Format(), releaseDocument(info))
		},
	}
}

func releaseDocument(info platformservice.ReleaseInfo) render.Document {
	return render.Document{
		Title: "Release",
		Rows: []render.Row{
			{Label: "id", Value: info.ID},
			{Label: "id like", Value: strutils.OrDefault(info.IDLike, "-")},
			{Label: "version", Value: strutils.OrDefault(info.VersionID, "-")},
			{Label: "family", Value: info.Family},
			{Label: "package manager", Value: info.PackageManager},
		},
		Data: info,
	}
}
