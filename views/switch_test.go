package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/hsdev/portfolio/theme"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func TestSwitchRendersExactlyOneIcon(t *testing.T) {
	for _, on := range []bool{false, true} {
		got := render(t, Switch(SwitchProps{IsOn: on, OnColor: "#0f1114"}))
		moons := strings.Count(got, `aria-label="moon"`)
		suns := strings.Count(got, `aria-label="sun"`)
		if moons+suns != 1 {
			t.Fatalf("on=%v: rendered %d moon and %d sun icons, want exactly one", on, moons, suns)
		}
		if on && suns != 1 {
			t.Fatalf("on=true should show the sun icon, got %q", got)
		}
		if !on && moons != 1 {
			t.Fatalf("on=false should show the moon icon, got %q", got)
		}
		if !strings.Contains(got, `role="img"`) {
			t.Fatalf("icon missing img role: %q", got)
		}
	}
}

func TestSwitchCheckedMatchesState(t *testing.T) {
	if got := render(t, Switch(SwitchProps{IsOn: true})); !strings.Contains(got, "data-theme-toggle checked/>") {
		t.Fatalf("expected checked checkbox, got %q", got)
	}
	if got := render(t, Switch(SwitchProps{IsOn: false})); strings.Contains(got, " checked") {
		t.Fatalf("expected unchecked checkbox, got %q", got)
	}
}

func TestSwitchCheckedFollowsToggle(t *testing.T) {
	st := theme.New(nil, false)
	for i := 0; i < 4; i++ {
		want := st.Toggle()
		got := render(t, DarkModeToggle(st, "", "", ""))
		if checked := strings.Contains(got, " checked"); checked != want {
			t.Fatalf("after toggle %d: checked = %v, want %v", i+1, checked, want)
		}
	}
}

func TestSwitchAccentOnlyWhenOn(t *testing.T) {
	on := render(t, Switch(SwitchProps{IsOn: true, OnColor: "#123456"}))
	if !strings.Contains(on, `style="background: #123456"`) {
		t.Fatalf("expected accent background when on, got %q", on)
	}
	off := render(t, Switch(SwitchProps{IsOn: false, OnColor: "#123456"}))
	if strings.Contains(off, "#123456") {
		t.Fatalf("accent should not apply when off, got %q", off)
	}
}

func TestSwitchFormAttributes(t *testing.T) {
	got := render(t, Switch(SwitchProps{CSRFToken: `tok"en`}))
	if !strings.Contains(got, `action="/theme/toggle/"`) {
		t.Errorf("expected default action, got %q", got)
	}
	if !strings.Contains(got, `name="_csrf" value="tok&#34;en"`) {
		t.Errorf("expected escaped csrf token, got %q", got)
	}
	got = render(t, Switch(SwitchProps{Action: "/prefs/theme/"}))
	if !strings.Contains(got, `action="/prefs/theme/"`) || strings.Contains(got, "_csrf") {
		t.Errorf("unexpected form %q", got)
	}
}

func TestDarkModeToggleDefaultsAccent(t *testing.T) {
	st := theme.New(nil, true)
	got := render(t, DarkModeToggle(st, "", "", ""))
	if !strings.Contains(got, "background: "+theme.DefaultAccent) {
		t.Fatalf("expected default accent, got %q", got)
	}
	if got := render(t, DarkModeToggle(nil, "", "", "")); !strings.Contains(got, `aria-label="moon"`) {
		t.Fatalf("nil state should render as off, got %q", got)
	}
}

func TestSwitchIcon(t *testing.T) {
	if SwitchIcon(false).Label != "moon" || SwitchIcon(true).Label != "sun" {
		t.Fatal("unexpected icon mapping")
	}
}
