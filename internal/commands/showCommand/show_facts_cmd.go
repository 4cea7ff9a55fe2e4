package showCommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
)

// factLabels are the text-output labels for each fact.
var factLabels = map[platformservice.Fact]string{
	platformservice.FactRealName:   "real name",
	platformservice.FactUserName:   "username",
	platformservice.FactDeviceName: "device name",
	platformservice.FactHostName:   "hostname",
	platformservice.FactDistro:     "distro",
	platformservice.FactDesktopEnv: "desktop env",
	platformservice.FactPlatform:   "platform",
	platformservice.FactArch:       "arch",
	platformservice.FactLangs:      "langs",
}

func NewFactsCmd() *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:     "facts",
		Aliases: []string{"all"},
		Short:   "Show every identity fact. You can pass multiple --property <fact> flags.",
		Long: `Show the identity facts of this machine and the current user.

Facts that cannot be read are shown with their error; the rest are still
printed.

Available properties for --property:
  - realname
  - username
  - devicename
  - hostname
  - distro
  - desktop
  - platform
  - arch
  - langs
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintFacts(cmd, properties)
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific facts (can be repeated)")

	return cmd
}

// PrintFacts gathers facts and writes those named in properties, or all of
// them when properties is empty.
func PrintFacts(cmd *cobra.Command, properties []string) error {
	selected, err := selectFacts(properties)
	if err != nil {
		return err
	}

	a := app.FromCommand(cmd)
	facts := a.Service.Gather()

	return render.Write(cmd.OutOrStdout(), a.Format(), factsDocument(facts, selected))
}

// selectFacts parses --property values. No properties selects nothing, which
// factsDocument treats as every fact.
func selectFacts(properties []string) ([]platformservice.Fact, error) {
	selected := make([]platformservice.Fact, 0, len(properties))
	for _, p := range properties {
		f, err := platformservice.ParseFact(p)
		if err != nil {
			return nil, err
		}
		selected = append(selected, f)
	}

	return selected, nil
}

func factsDocument(facts *platformservice.Facts, selected []platformservice.Fact) render.Document {
	doc := render.Document{Title: "whoami", Data: facts}

	if len(selected) == 0 {
		selected = platformservice.AllFacts
	} else {
		data := make(map[string]string, len(selected))
		for _, f := range selected {
			data[f.Key()] = facts.Get(f)
		}
		doc.Data = data
	}

	for _, f := range selected {
		doc.Rows = append(doc.Rows, render.Row{
			Label: factLabels[f],
			Value: facts.Get(f),
			Err:   facts.Err(f),
		})
	}

	return doc
}
