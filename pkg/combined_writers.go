package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write to all of its writers. Used to send logs
// to the rotated log file and stdout at the same time.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write keeps going when a single writer fails; n is the sum of bytes
// written by the healthy writers and err combines all the failures.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
