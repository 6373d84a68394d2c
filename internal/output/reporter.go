package output

import (
	"github.com/AndreyAkinshin/benchcmp/internal/validation"
)

// Sink receives reported text. *bufio.Writer satisfies it.
type Sink interface {
	WriteString(s string) (int, error)
	Flush() error
}

// StatusReporter prints comparison verdicts.
//
// In verbose mode each verdict is printed as "Passed.", "WARNING." or
// "**FAILED**." on its own line, followed by the message if there is one and,
// unless disabled, a blank line. In terse mode only ".", "W" or "F" is
// written. The sink is flushed after every verdict so progress shows up
// immediately.
type StatusReporter struct {
	sink    Sink
	verbose bool
	vspace  bool
}

// NewStatusReporter creates a StatusReporter writing to sink.
func NewStatusReporter(sink Sink, verbose bool) *StatusReporter {
	return &StatusReporter{sink: sink, verbose: verbose, vspace: true}
}

// SetVerticalSpace controls the blank line after verbose verdicts.
func (r *StatusReporter) SetVerticalSpace(on bool) {
	r.vspace = on
}

// Report writes the verdict for status with an optional message.
func (r *StatusReporter) Report(status validation.Status, msg string) error {
	text := status.Symbol()
	if r.verbose {
		text = status.Label() + "\n"
		if msg != "" {
			text += msg + "\n"
		}
		if r.vspace {
			text += "\n"
		}
	}
	if _, err := r.sink.WriteString(text); err != nil {
		return err
	}
	return r.sink.Flush()
}
