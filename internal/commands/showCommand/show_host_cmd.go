package showCommand

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/convert"
	"github.com/redjax/whoami/internal/utils/render"
	"github.com/redjax/whoami/internal/utils/spinner"
	"github.com/redjax/whoami/internal/utils/strutils"
)

func NewShowHostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Show host hardware and kernel details",
		Long:  `Shows kernel version, uptime, virtualization, CPU and memory details of the current host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.FromCommand(cmd)

			stop := spinner.StartSpinner("Reading host details")
			details, err := platformservice.GatherHostDetails(cmd.Context())
			stop()
			if err != nil {
				// Print what was read
				a.Log.WithError(err).Warn("host details incomplete")
			}

			return render.Write(cmd.OutOrStdout(), a.Format(), hostDocument(details))
		},
	}

	return cmd
}

func hostDocument(hd *platformservice.HostDetails) render.Document {
	rows := []render.Row{
		{Label: "kernel", Value: strutils.OrDefault(hd.KernelVersion, "-")},
		{Label: "kernel arch", Value: strutils.OrDefault(hd.KernelArch, "-")},
		{Label: "virtualization", Value: strutils.OrDefault(hd.Virtualization, "none")},
		{Label: "uptime", Value: hd.Uptime.Round(time.Second).String()},
		{Label: "total ram", Value: convert.BytesToHumanReadable(hd.TotalRAM)},
		{Label: "cpu model", Value: strutils.OrDefault(hd.CPUModel, "-")},
		{Label: "cpu vendor", Value: strutils.OrDefault(hd.CPUVendor, "-")},
		{Label: "cpu cores", Value: strconv.Itoa(hd.CPUCores)},
		{Label: "cpu threads", Value: strconv.Itoa(hd.CPUThreads)},
	}

	if !hd.BootTime.IsZero() {
		rows = append(rows, render.Row{Label: "boot time", Value: hd.BootTime.Format(time.RFC3339)})
	}

	rows = append(rows, render.Row{
		Label: "time",
		Value: fmt.Sprintf("%s (%s)", hd.Time.CurrentTime, hd.Time.Timezone),
	})

	return render.Document{Title: "Host", Rows: rows, Data: hd}
}
