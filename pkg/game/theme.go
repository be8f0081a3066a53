package game

import "fmt"

// Theme is the site-wide colour theme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// DefaultTheme is used when nothing has been saved yet.
const DefaultTheme = ThemeLight

// String returns the name used in storage and palette lookups.
func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// ParseTheme maps "light" or "dark" back to a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return DefaultTheme, fmt.Errorf("unknown theme %q", name)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeSource gives read access to the active theme.
type ThemeSource interface {
	Theme() Theme
}

// StaticTheme is a ThemeSource that never changes.
type StaticTheme Theme

// Theme implements ThemeSource.
func (s StaticTheme) Theme() Theme {
	return Theme(s)
}
