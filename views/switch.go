package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/hsdev/portfolio/theme"
)

// DefaultToggleAction is where the toggle form posts.
const DefaultToggleAction = "/theme/toggle/"

// ToggleID is the DOM id of the toggle form, used as the swap target.
const ToggleID = "theme-toggle"

// Icon is the glyph shown inside the switch.
type Icon struct {
	Label string // accessible name
	Glyph string
}

var (
	moonIcon = Icon{Label: "moon", Glyph: "🌙"}
	sunIcon  = Icon{Label: "sun", Glyph: "☀️"}
)

// SwitchIcon picks the single icon for a switch state: moon when off, sun when on.
func SwitchIcon(isOn bool) Icon {
	if isOn {
		return sunIcon
	}
	return moonIcon
}

// SwitchProps configures a Switch.
type SwitchProps struct {
	IsOn      bool
	Action    string // form action; DefaultToggleAction when empty
	OnColor   string // label background while on
	CSRFToken string
}

// Switch renders a two-state checkbox control. Changing the checkbox submits
// the form once; there is no intermediate state.
func Switch(p SwitchProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := p.Action
		if action == "" {
			action = DefaultToggleAction
		}
		icon := SwitchIcon(p.IsOn)
		h := &htmlWriter{w: w}
		h.raw(`<form id="`, ToggleID, `" class="theme-toggle" method="post" action="`, esc(action), `">`)
		if p.CSRFToken != "" {
			h.raw(`<input type="hidden" name="_csrf" value="`, esc(p.CSRFToken), `"/>`)
		}
		h.raw(`<input class="switch-checkbox" id="theme-switch" type="checkbox" name="dark" value="on" aria-label="Dark mode" data-theme-toggle`)
		if p.IsOn {
			h.raw(` checked`)
		}
		h.raw(`/>`)
		h.raw(`<label class="switch-label" for="theme-switch"`)
		if p.IsOn && p.OnColor != "" {
			h.raw(` style="background: `, esc(p.OnColor), `"`)
		}
		h.raw(`><div style="margin-left: 1rem">`)
		h.raw(`<span aria-label="`, icon.Label, `" role="img">`, icon.Glyph, `</span>`)
		h.raw(`</div></label>`)
		h.raw(`<noscript><button type="submit" class="switch-submit">Switch theme</button></noscript>`)
		h.raw(`</form>`)
		return h.err
	})
}

// DarkModeToggle binds a Switch to the visitor's theme state.
func DarkModeToggle(state *theme.State, accent, csrfToken, action string) templ.Component {
	if accent == "" {
		accent = theme.DefaultAccent
	}
	on := state != nil && state.Value()
	return Switch(SwitchProps{
		IsOn:      on,
		Action:    action,
		OnColor:   accent,
		CSRFToken: csrfToken,
	})
}
