package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows a spinner with the given message on stderr.
// Returns a stop function to halt and clear the spinner. Nothing is drawn
// when stderr is not a terminal.
//
//	stop := spinner.StartSpinner("Reading host details")
//	details, err := platformservice.GatherHostDetails(ctx)
//	stop()
func StartSpinner(message string) func() {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriterFile(os.Stderr),
		spinner.WithSuffix(" "+message),
	)
	s.Start()

	return s.Stop
}
