package shell

import (
	"bytes"
	"sync"
)

// LineWriter is an io.Writer that hands complete lines to emit. Partial lines
// are buffered until a newline arrives or Flush is called.
type LineWriter struct {
	emit func(line string)
	buf  bytes.Buffer
	mu   sync.Mutex
}

// NewLineWriter creates a LineWriter that calls emit once per line, without
// the trailing newline.
func NewLineWriter(emit func(line string)) *LineWriter {
	return &LineWriter{emit: emit}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := w.buf.Next(i + 1)
		w.emit(string(bytes.TrimRight(line, "\r\n")))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *LineWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
	return nil
}
