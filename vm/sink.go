package vm

import (
	"io"
	"strings"
)

// Sink is where output operators send their text to.
type Sink interface {
	Write(text string) error
}

// WriterSink adapts an io.Writer, e.g. os.Stdout, to be an output sink.
func WriterSink(w io.Writer) Sink {
	return writerSink{w}
}

type writerSink struct {
	w io.Writer
}

func (ws writerSink) Write(text string) error {
	_, err := io.WriteString(ws.w, text)
	return err
}

// Surface is an output sink accumulating all text written to it.
type Surface struct {
	text strings.Builder
}

var _ Sink = (*Surface)(nil)

func (s *Surface) Write(text string) error {
	s.text.WriteString(text)
	return nil
}

// Text returns everything written to s so far.
func (s *Surface) Text() string {
	return s.text.String()
}

// Reset clears the surface.
func (s *Surface) Reset() {
	s.text.Reset()
}
