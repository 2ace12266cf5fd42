package model

import "testing"

func TestResolve_KnownClasses(t *testing.T) {
	icons := DefaultIcons()
	for class, want := range icons {
		if got := icons.Resolve(class); got != want {
			t.Errorf("Resolve(%q)=%q want %q", class, got, want)
		}
	}
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	icons := DefaultIcons()
	for _, class := range []string{"", "unknown-app", "FIREFOX", "Firefox", "fire", "firefox-esr", " firefox"} {
		if got := icons.Resolve(class); got != IconDefault {
			t.Errorf("Resolve(%q)=%q want default %q", class, got, IconDefault)
		}
	}
}

func TestResolve_CustomDefault(t *testing.T) {
	icons := IconTable{"xterm": "X", DefaultIconKey: "?"}
	if got := icons.Resolve("urxvt"); got != "?" {
		t.Fatalf("Resolve(urxvt)=%q want %q", got, "?")
	}
	if got := icons.Resolve("xterm"); got != "X" {
		t.Fatalf("Resolve(xterm)=%q want %q", got, "X")
	}
}

func TestDefaultIcons_HasDefaultKey(t *testing.T) {
	if _, ok := DefaultIcons()[DefaultIconKey]; !ok {
		t.Fatalf("built-in table is missing %q", DefaultIconKey)
	}
}
