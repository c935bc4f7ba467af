package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a spinner with the given message on w, normally
// stderr so it never mixes with report output. Returns a stop function that
// halts and clears it.
//
//	stop := spinner.StartSpinner(os.Stderr, "Gathering facts")
//	info := svc.GatherPlatformInfo()
//	stop()
func StartSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}
