package portfolio

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/hsdev/portfolio/theme"
	"github.com/hsdev/portfolio/views"
)

// ThemeChangedEvent is the HX-Trigger event fired after a toggle.
const ThemeChangedEvent = "themeChanged"

// handleThemeToggle flips the visitor's theme once per POST. HTMX-style
// requests get the re-rendered switch; plain form posts are redirected back.
func (a *App) handleThemeToggle(c echo.Context) error {
	st := ThemeState(c)
	if st == nil {
		st = theme.New(nil, a.Config.DefaultDark)
	}

	unsubscribe := st.Subscribe(func(dark bool) {
		trigger, err := json.Marshal(map[string]any{
			ThemeChangedEvent: map[string]any{"dark": dark, "mode": theme.ModeOf(dark)},
		})
		if err != nil {
			return
		}
		c.Response().Header().Set("HX-Trigger", string(trigger))
	})
	defer unsubscribe()

	dark := st.Toggle()
	c.Logger().Debugf("theme: toggled to %s (persistent=%t)", theme.ModeOf(dark), st.Persistent())

	if isHTMXRequest(c.Request()) {
		return Render(c, views.DarkModeToggle(st, a.Config.Accent, CsrfToken(c), views.DefaultToggleAction))
	}
	return c.Redirect(http.StatusSeeOther, backPath(c.Request()))
}

func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// backPath returns the same-origin path of the Referer, or "/".
func backPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || ref.Path[0] != '/' {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if len(ref.Path) > 1 && ref.Path[1] == '/' {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
