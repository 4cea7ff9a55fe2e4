package showCommand

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
)

func NewShowTimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Show host's time info",
		Long:  `Show information about host's time, like the current time, timezone, and offset seconds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.FromCommand(cmd)

			return render.Write(cmd.OutOrStdout(), a.Format(), timeDocument(platformservice.CurrentTimeInfo()))
		},
	}

	return cmd
}

func timeDocument(ti platformservice.TimeInfo) render.Document {
	return render.Document{
		Title: "Time",
		Rows: []render.Row{
			{Label: "current time", Value: ti.CurrentTime},
			{Label: "timezone", Value: ti.Timezone},
			{Label: "location", Value: ti.TimezoneLong},
			{Label: "offset seconds", Value: strconv.Itoa(ti.OffsetSeconds)},
		},
		Data: ti,
	}
}
