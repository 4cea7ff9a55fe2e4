package showCommand

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
)

func NewShowNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show only network-related platform information",
		Long:  `Shows network interfaces, their addresses, and the default gateway of the current platform.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.FromCommand(cmd)

			info, err := platformservice.GatherNetworkInfo()
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), a.Format(), netDocument(info))
		},
	}

	return cmd
}

func netDocument(info *platformservice.NetworkInfo) render.Document {
	rows := make([]render.Row, 0, len(info.Interfaces)+1)

	for _, iface := range info.Interfaces {
		value := strings.Join(iface.IPAddresses, ", ")
		if value == "" {
			value = "no addresses"
		}
		if iface.HardwareAddress != "" {
			value += " [" + iface.HardwareAddress + "]"
		}

		rows = append(rows, render.Row{Label: iface.Name, Value: value})
	}

	gw := strings.Join(info.GatewayIPs, ", ")
	if gw == "" {
		gw = "none"
	}
	rows = append(rows, render.Row{Label: "gateway", Value: gw})

	return render.Document{Title: "Network", Rows: rows, Data: info}
}
