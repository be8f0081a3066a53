package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestThemeParseAndToggle(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"light", ThemeLight, false},
		{"dark", ThemeDark, false},
		{"Dark", DefaultTheme, true},
		{"", DefaultTheme, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.name)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, %v", tt.name, got, err)
		}
	}

	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle() != ThemeLight {
		t.Error("Toggle must swap light and dark")
	}
	if ThemeDark.String() != "dark" || ThemeLight.String() != "light" {
		t.Error("unexpected theme names")
	}
	if StaticTheme(ThemeDark).Theme() != ThemeDark {
		t.Error("StaticTheme must return its value")
	}
}

func TestThemeManagerDefaults(t *testing.T) {
	tm := NewThemeManager(openTestStorage(t, "test_theme_defaults"))
	if tm.Theme() != ThemeLight {
		t.Errorf("initial theme = %s, want light", tm.Theme())
	}
}

func TestThemeManagerPersists(t *testing.T) {
	storage := openTestStorage(t, "test_theme_persist")

	tm := NewThemeManager(storage)
	theme, err := tm.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("Toggle returned %s, want dark", theme)
	}

	reloaded := NewThemeManager(storage)
	if reloaded.Theme() != ThemeDark {
		t.Errorf("reloaded theme = %s, want dark", reloaded.Theme())
	}

	reloaded.SetTheme(ThemeLight)
	if err := reloaded.Save(); err != nil {
		t.Fatal(err)
	}
	if err := tm.Load(); err != nil {
		t.Fatal(err)
	}
	if tm.Theme() != ThemeLight {
		t.Errorf("theme after reload = %s, want light", tm.Theme())
	}
}

func TestThemeManagerCorruptPreference(t *testing.T) {
	storage := openTestStorage(t, "test_theme_corrupt")
	if err := storage.SaveObjectProp(preferencesObject, themeProperty, []byte("theme: sepia\n")); err != nil {
		t.Fatal(err)
	}

	tm := NewThemeManager(storage)
	if tm.Theme() != DefaultTheme {
		t.Errorf("corrupt preference should fall back to %s, got %s", DefaultTheme, tm.Theme())
	}
	if err := tm.Load(); err == nil {
		t.Error("Load should report the unknown theme")
	}
}

func TestThemeManagerNilStorage(t *testing.T) {
	tm := NewThemeManager(nil)
	if tm.Theme() != DefaultTheme {
		t.Errorf("theme = %s, want %s", tm.Theme(), DefaultTheme)
	}

	theme, err := tm.Toggle()
	if err != nil {
		t.Errorf("memory-only Toggle should not fail: %v", err)
	}
	if theme != ThemeDark || tm.Theme() != ThemeDark {
		t.Error("memory-only Toggle must still switch the theme")
	}
	if err := tm.Load(); err != nil || tm.Theme() != DefaultTheme {
		t.Error("memory-only Load resets to the default theme")
	}
}
