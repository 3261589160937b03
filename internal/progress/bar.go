package progress

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Sentinel errors returned by this package. Callers can match them with
// errors.Is to distinguish construction problems from sink failures.
var (
	// ErrInvalidConfig is returned by New when the total or an option
	// would produce a degenerate display (zero-width bar, division by zero).
	ErrInvalidConfig = errors.New("invalid progress configuration")

	// ErrWrite wraps a failed write to the output sink. The bar never
	// retries; handling a broken sink belongs to the caller.
	ErrWrite = errors.New("progress write failed")
)

// mode is the display state. A bar starts running and moves to completed
// the first time Render observes current >= total. The transition is one-way:
// once completed, the rendered line is frozen at the full bar and
// "Completed!" status regardless of further Advance calls.
type mode int

const (
	running mode = iota
	completed
)

// Defaults applied by New for any Options field left at its zero value.
const (
	DefaultWidth         = 50
	DefaultFillGlyph     = "#"
	DefaultEmptyGlyph    = "-"
	DefaultSpinnerGlyphs = `|/-\`
	DefaultDoneGlyph     = "✓"
)

// Options configures a Bar. Every field is optional; zero values select the
// defaults above. Color fields are opaque control sequences written verbatim
// around their segment — they are not validated, and all default to empty
// strings so a bar with no theme produces plain text. Callers supplying
// colors should also supply Reset (and usually ClearLine, so shrinking
// status text does not leave stale characters).
type Options struct {
	// Width is the number of glyph positions in the bar (default 50).
	Width int

	// FillGlyph and EmptyGlyph draw the completed and remaining segments.
	FillGlyph  string
	EmptyGlyph string

	// SpinnerGlyphs is the ordered spinner animation cycle. Each
	// non-terminal render shows the next glyph, wrapping around.
	SpinnerGlyphs string

	// DoneGlyph replaces the spinner once the bar completes.
	DoneGlyph string

	// Per-segment color codes, inserted verbatim.
	ColorFill     string
	ColorEmpty    string
	ColorSpinner  string
	ColorStatus   string
	ColorComplete string

	// Reset is written after each colored segment.
	Reset string

	// ClearLine is written after the carriage return, before the bar.
	ClearLine string

	// Output is the sink the rendered line is written to (default
	// os.Stdout). If it exposes Flush() error, Render flushes after
	// each write.
	Output io.Writer
}

// flusher is satisfied by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Bar renders a single-line terminal progress display: colored bar, spinner,
// and percentage, rewritten in place on every Render. It tracks cumulative
// progress against a fixed total. A Bar has exactly one owner; it is not
// safe for concurrent use and never blocks or sleeps — pacing belongs to
// the caller's loop.
type Bar struct {
	opts         Options
	total        int
	current      int
	spinner      []rune
	spinnerIndex int
	mode         mode
}

// New creates a Bar that reaches 100% when total units have been reported
// via Advance. total must be greater than zero and Width must not be
// negative; violations return an error wrapping ErrInvalidConfig.
func New(total int, opts Options) (*Bar, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: total must be greater than zero, got %d", ErrInvalidConfig, total)
	}
	if opts.Width < 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, opts.Width)
	}

	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.FillGlyph == "" {
		opts.FillGlyph = DefaultFillGlyph
	}
	if opts.EmptyGlyph == "" {
		opts.EmptyGlyph = DefaultEmptyGlyph
	}
	if opts.SpinnerGlyphs == "" {
		opts.SpinnerGlyphs = DefaultSpinnerGlyphs
	}
	if opts.DoneGlyph == "" {
		opts.DoneGlyph = DefaultDoneGlyph
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Bar{
		opts:    opts,
		total:   total,
		spinner: []rune(opts.SpinnerGlyphs),
	}, nil
}

// Advance reports n newly completed units. The raw sum is stored without
// clamping so callers can report work in uneven batches; clamping to total
// happens at render time. Negative n is accepted but not useful.
func (b *Bar) Advance(n int) {
	b.current += n
}

// Increment reports a single completed unit.
func (b *Bar) Increment() {
	b.Advance(1)
}

// Current returns the raw cumulative progress, including any overshoot
// past the total.
func (b *Bar) Current() int {
	return b.current
}

// Total returns the unit count representing 100%.
func (b *Bar) Total() int {
	return b.total
}

// Completed reports whether enough units have been advanced to finish
// the task.
func (b *Bar) Completed() bool {
	return b.current >= b.total
}

// Render writes the current display line to the output sink, overwriting
// the previous line in place (carriage return prefix, no trailing newline),
// and flushes buffered sinks. While running, the status is the integer
// percentage and the spinner advances one glyph per call; once progress
// reaches the total the status becomes "Completed!", the spinner freezes,
// and every later render repeats the finished line. A rejected write is
// returned wrapped with ErrWrite.
func (b *Bar) Render() error {
	displayed := b.current
	if b.mode == completed || displayed > b.total {
		displayed = b.total
	}
	frac := float64(displayed) / float64(b.total)
	filled := int(math.Round(frac * float64(b.opts.Width)))
	percent := int(math.Round(frac * 100))

	var sb strings.Builder
	sb.WriteString("\r")
	sb.WriteString(b.opts.ClearLine)
	sb.WriteString(b.opts.ColorFill)
	sb.WriteString(strings.Repeat(b.opts.FillGlyph, filled))
	sb.WriteString(b.opts.ColorEmpty)
	sb.WriteString(strings.Repeat(b.opts.EmptyGlyph, b.opts.Width-filled))
	sb.WriteString(b.opts.Reset)
	sb.WriteString(" ")

	if displayed >= b.total {
		b.mode = completed
		sb.WriteString(b.opts.ColorComplete)
		sb.WriteString(b.opts.DoneGlyph)
		sb.WriteString(b.opts.Reset)
		sb.WriteString(" ")
		sb.WriteString(b.opts.ColorComplete)
		sb.WriteString("Completed!")
		sb.WriteString(b.opts.Reset)
	} else {
		glyph := b.spinner[b.spinnerIndex%len(b.spinner)]
		b.spinnerIndex++
		sb.WriteString(b.opts.ColorSpinner)
		sb.WriteRune(glyph)
		sb.WriteString(b.opts.Reset)
		sb.WriteString(" ")
		sb.WriteString(b.opts.ColorStatus)
		sb.WriteString(fmt.Sprintf("%d%%", percent))
		sb.WriteString(b.opts.Reset)
	}

	if _, err := io.WriteString(b.opts.Output, sb.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if f, ok := b.opts.Output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

// Finish forces the bar to 100%, renders the finished line, and writes a
// trailing newline so subsequent terminal output starts on a fresh line.
func (b *Bar) Finish() error {
	if b.current < b.total {
		b.current = b.total
	}
	if err := b.Render(); err != nil {
		return err
	}
	if _, err := io.WriteString(b.opts.Output, "\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
