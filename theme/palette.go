package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Mode names a palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// DefaultAccent is the "on" colour of the toggle.
const DefaultAccent = "#0f1114"

// ModeOf maps the dark mode flag onto a Mode.
func ModeOf(enabled bool) Mode {
	if enabled {
		return ModeDark
	}
	return ModeLight
}

// Palette holds the document-level colours for one mode.
type Palette struct {
	Mode       Mode
	Background string
	Text       string
	Muted      string // dates and secondary text
	Link       string
	Border     string
	Accent     string
}

var palettes = map[Mode]Palette{
	ModeLight: {
		Mode:       ModeLight,
		Background: "#ffffff",
		Text:       "#1a1a1a",
		Muted:      "#676767",
		Link:       "#0b1f3a",
		Border:     "#000000",
		Accent:     DefaultAccent,
	},
	ModeDark: {
		Mode:       ModeDark,
		Background: "#0f1114",
		Text:       "#e6e6e6",
		Muted:      "#9a9a9a",
		Link:       "#d7e3f4",
		Border:     "#e6e6e6",
		Accent:     DefaultAccent,
	},
}

// Resolve returns a copy of the palette for the flag. A non-empty accent
// replaces the default toggle colour.
func Resolve(enabled bool, accent string) Palette {
	p := palettes[ModeOf(enabled)]
	if a := strings.TrimSpace(accent); a != "" {
		p.Accent = a
	}
	return p
}

// CSS renders the palette as a custom property block for selector.
func (p Palette) CSS(selector string) string {
	vars := map[string]string{
		"--color-bg":     p.Background,
		"--color-text":   p.Text,
		"--color-muted":  p.Muted,
		"--color-link":   p.Link,
		"--color-border": p.Border,
		"--color-accent": p.Accent,
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString("{")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s:%s;", k, cssValue(vars[k]))
	}
	b.WriteString("}")
	return b.String()
}

// cssValue drops characters that could end the declaration or the style element.
func cssValue(v string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\':
			return -1
		}
		return r
	}, v)
}
