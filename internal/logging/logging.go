// Package logging builds the structured logger shared by every component.
package logging

import (
	"io"
	"os"

	"github.com/go-kratos/kratos/v2/log"
)

// New returns a key/value logger writing to w, filtered at level.
// A nil writer means stdout.
func New(w io.Writer, level string) log.Logger {
	if w == nil {
		w = os.Stdout
	}
	logger := log.With(log.NewStdLogger(w),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
	)
	return log.NewFilter(logger, log.FilterLevel(log.ParseLevel(level)))
}

// Discard is used by tests and by callers that do not care about output.
func Discard() log.Logger {
	return log.NewStdLogger(io.Discard)
}
