package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to all its writers. A failing writer does
// not stop the others; all failures are returned combined.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

// Write reports len(p) as written when at least one writer took all of p.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err      error
		anyWrote bool
	)
	for _, w := range cw.writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n == len(p) {
			anyWrote = true
		}
	}
	if anyWrote {
		return len(p), err
	}
	return 0, err
}
