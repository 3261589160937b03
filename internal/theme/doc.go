// Package theme provides named color and glyph presets for progress bars,
// YAML loading of user themes, and terminal color detection.
//
// A theme is a plain bundle of opaque ANSI sequences and glyph strings.
// Built-in presets cover the common cases:
//
//	t, _ := theme.Builtin("classic")
//	bar, err := progress.New(total, t.Options(50, os.Stdout))
//
// User themes are YAML files whose non-empty fields override a base preset:
//
//	t, err := theme.Load("mytheme.yaml", base)
//
// Detect reports whether a writer is a color-capable terminal; callers
// typically switch to t.Stripped() when it returns false.
package theme
