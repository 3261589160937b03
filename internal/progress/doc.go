// Package progress renders a single-line terminal progress display: a
// colored bar, a spinner, and an integer percentage, rewritten in place as
// the caller reports progress toward a known total.
//
// # Usage
//
//	bar, err := progress.New(len(files), progress.Options{Width: 40})
//	if err != nil {
//	    return err
//	}
//	for _, file := range files {
//	    // ... process file ...
//	    bar.Increment()
//	    if err := bar.Render(); err != nil {
//	        return err
//	    }
//	}
//	bar.Finish()
//
// The bar writes to any io.Writer (os.Stdout by default), so tests can
// capture output in a bytes.Buffer. Each render overwrites the previous
// line with a carriage-return prefix and emits no newline until Finish.
// Once progress reaches the total the status line freezes at "Completed!"
// and stays there on every later render.
//
// # Byte-counting proxies
//
// Writer and Reader wrap an io.Writer or io.Reader and advance a bar by
// the number of bytes transferred, rendering after each chunk:
//
//	src := progress.NewReader(file, bar)
//	_, err := io.Copy(dst, src)
//
// The package is synchronous and single-owner: no goroutines, no locking,
// no sleeping. Callers pace their own loops.
package progress
