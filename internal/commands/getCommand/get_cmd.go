package getCommand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redjax/whoami/internal/app"
	"github.com/redjax/whoami/internal/config"
	platformservice "github.com/redjax/whoami/internal/services/platformService"
	"github.com/redjax/whoami/internal/utils/render"
)

func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <fact> [fact...]",
		Short: "Print one or more facts about this machine.",
		Long: `Print the value of each requested fact, one per line.

Available facts:
  ` + strings.Join(factKeys(), "\n  ") + `

With --format json or yaml the facts are printed as a map keyed by fact.
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: factKeys(),
		RunE:      runGet,
	}

	return cmd
}

func factKeys() []string {
	keys := make([]string, 0, len(platformservice.AllFacts))
	for _, f := range platformservice.AllFacts {
		keys = append(keys, f.Key())
	}

	return keys
}

func runGet(cmd *cobra.Command, args []string) error {
	a := app.FromCommand(cmd)

	facts := make([]platformservice.Fact, 0, len(args))
	for _, arg := range args {
		f, err := platformservice.ParseFact(arg)
		if err != nil {
			return err
		}
		facts = append(facts, f)
	}

	var (
		values = make([]string, 0, len(facts))
		byKey  = make(map[string]string, len(facts))
		errs   []error
	)

	for _, f := range facts {
		v, err := a.Service.Query(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Key(), err))
			continue
		}

		values = append(values, v)
		byKey[f.Key()] = v
	}

	out := cmd.OutOrStdout()

	var err error
	switch a.Format() {
	case config.FormatText:
		err = render.Lines(out, values)
	default:
		err = render.Write(out, a.Format(), render.Document{Data: byKey})
	}
	if err != nil {
		return err
	}

	return errors.Join(errs...)
}
