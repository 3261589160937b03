package theme

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/harrison/pulse/internal/progress"
)

// Theme bundles the glyphs and raw color sequences for a progress bar.
// Color fields are opaque control strings passed to the bar verbatim; the
// package never validates them. Empty fields mean "inherit" when the theme
// is loaded from a file over a base, and "no color" when applied directly.
type Theme struct {
	FillGlyph     string `yaml:"fill_glyph"`
	EmptyGlyph    string `yaml:"empty_glyph"`
	SpinnerGlyphs string `yaml:"spinner_glyphs"`
	DoneGlyph     string `yaml:"done_glyph"`

	ColorFill     string `yaml:"color_fill"`
	ColorEmpty    string `yaml:"color_empty"`
	ColorSpinner  string `yaml:"color_spinner"`
	ColorStatus   string `yaml:"color_status"`
	ColorComplete string `yaml:"color_complete"`
	Reset         string `yaml:"reset"`
	ClearLine     string `yaml:"clear_line"`
}

// DefaultTheme is the name resolved when the caller specifies none.
const DefaultTheme = "classic"

// builtins holds the named presets. The neon palette reproduces a popular
// truecolor bar style with a braille spinner; classic and ocean stick to
// the widely supported 16/256-color sequences.
var builtins = map[string]Theme{
	"plain": {},
	"classic": {
		ColorFill:     "\x1b[32m",
		ColorEmpty:    "\x1b[90m",
		ColorSpinner:  "\x1b[33m",
		ColorStatus:   "\x1b[36m",
		ColorComplete: "\x1b[32m",
		Reset:         "\x1b[0m",
		ClearLine:     "\x1b[K",
	},
	"neon": {
		FillGlyph:     "▰",
		EmptyGlyph:    "▱",
		SpinnerGlyphs: "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏",
		ColorFill:     "\x1b[1;38;2;224;0;90m",
		ColorEmpty:    "\x1b[1;38;2;54;65;82m",
		ColorSpinner:  "\x1b[1;38;2;255;215;0m",
		ColorStatus:   "\x1b[1;38;2;104;118;244m",
		ColorComplete: "\x1b[1;38;2;12;159;109m",
		Reset:         "\x1b[0m",
		ClearLine:     "\x1b[K",
	},
	"ocean": {
		FillGlyph:     "█",
		EmptyGlyph:    "░",
		SpinnerGlyphs: "◐◓◑◒",
		ColorFill:     "\x1b[38;5;39m",
		ColorEmpty:    "\x1b[38;5;238m",
		ColorSpinner:  "\x1b[38;5;51m",
		ColorStatus:   "\x1b[38;5;45m",
		ColorComplete: "\x1b[38;5;42m",
		Reset:         "\x1b[0m",
		ClearLine:     "\x1b[K",
	},
}

// Builtin returns the named preset theme.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a theme from a YAML file and merges its non-empty fields over
// base, so a user file only has to override what it changes. A missing or
// malformed file is an error; use Builtin for named presets.
func Load(path string, base Theme) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var overlay Theme
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return Merge(base, overlay), nil
}

// Merge returns base with every non-empty field of overlay applied on top.
func Merge(base, overlay Theme) Theme {
	merged := base
	if overlay.FillGlyph != "" {
		merged.FillGlyph = overlay.FillGlyph
	}
	if overlay.EmptyGlyph != "" {
		merged.EmptyGlyph = overlay.EmptyGlyph
	}
	if overlay.SpinnerGlyphs != "" {
		merged.SpinnerGlyphs = overlay.SpinnerGlyphs
	}
	if overlay.DoneGlyph != "" {
		merged.DoneGlyph = overlay.DoneGlyph
	}
	if overlay.ColorFill != "" {
		merged.ColorFill = overlay.ColorFill
	}
	if overlay.ColorEmpty != "" {
		merged.ColorEmpty = overlay.ColorEmpty
	}
	if overlay.ColorSpinner != "" {
		merged.ColorSpinner = overlay.ColorSpinner
	}
	if overlay.ColorStatus != "" {
		merged.ColorStatus = overlay.ColorStatus
	}
	if overlay.ColorComplete != "" {
		merged.ColorComplete = overlay.ColorComplete
	}
	if overlay.Reset != "" {
		merged.Reset = overlay.Reset
	}
	if overlay.ClearLine != "" {
		merged.ClearLine = overlay.ClearLine
	}
	return merged
}

// Stripped returns a copy of the theme with every color sequence removed,
// keeping the glyphs. Used when the sink is not a terminal or color output
// is disabled.
func (t Theme) Stripped() Theme {
	t.ColorFill = ""
	t.ColorEmpty = ""
	t.ColorSpinner = ""
	t.ColorStatus = ""
	t.ColorComplete = ""
	t.Reset = ""
	t.ClearLine = ""
	return t
}

// Options converts the theme into bar options for the given width and sink.
func (t Theme) Options(width int, out io.Writer) progress.Options {
	return progress.Options{
		Width:         width,
		FillGlyph:     t.FillGlyph,
		EmptyGlyph:    t.EmptyGlyph,
		SpinnerGlyphs: t.SpinnerGlyphs,
		DoneGlyph:     t.DoneGlyph,
		ColorFill:     t.ColorFill,
		ColorEmpty:    t.ColorEmpty,
		ColorSpinner:  t.ColorSpinner,
		ColorStatus:   t.ColorStatus,
		ColorComplete: t.ColorComplete,
		Reset:         t.Reset,
		ClearLine:     t.ClearLine,
		Output:        out,
	}
}

// Detect reports whether color sequences should be emitted to w. Only real
// terminal file descriptors qualify, and the NO_COLOR convention is honored
// through the color package's detection.
func Detect(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
