package progress

import "io"

// Writer wraps an io.Writer and advances a Bar by the number of bytes
// written, rendering the bar after each successful chunk. The bar's total
// should be the expected byte count.
type Writer struct {
	w   io.Writer
	bar *Bar
}

// NewWriter creates a byte-counting writer proxy around w.
func NewWriter(w io.Writer, bar *Bar) *Writer {
	return &Writer{w: w, bar: bar}
}

// Write implements io.Writer. Render failures are reported only when the
// underlying write itself succeeded, so the byte count n stays accurate.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		w.bar.Advance(n)
		if rerr := w.bar.Render(); rerr != nil && err == nil {
			err = rerr
		}
	}
	return n, err
}

// Reader wraps an io.Reader and advances a Bar by the number of bytes
// read, rendering the bar after each successful chunk.
type Reader struct {
	r   io.Reader
	bar *Bar
}

// NewReader creates a byte-counting reader proxy around r.
func NewReader(r io.Reader, bar *Bar) *Reader {
	return &Reader{r: r, bar: bar}
}

// Read implements io.Reader. The io.EOF from the underlying reader passes
// through untouched so io.Copy terminates normally.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.bar.Advance(n)
		if rerr := r.bar.Render(); rerr != nil && (err == nil || err == io.EOF) {
			err = rerr
		}
	}
	return n, err
}

// Close closes the underlying reader when it implements io.Closer.
func (r *Reader) Close() error {
	if closer, ok := r.r.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
