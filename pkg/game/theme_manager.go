package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ThemePreference is the persisted form of the theme flag.
type ThemePreference struct {
	Theme string `yaml:"theme"`
}

// ThemeManager owns the single persisted theme flag.
//
// It keeps the flag in memory and writes it through gdata, which maps to a
// file on desktop and to localStorage in the browser. With a nil gdata
// manager it runs in memory only.
type ThemeManager struct {
	gdataManager *gdata.Manager // may be nil (memory only)
	theme        Theme
}

// Storage location.
const (
	preferencesObject = "preferences"
	themeProperty     = "theme"
)

// NewThemeManager creates a theme manager and loads the saved theme.
// A failed load is logged and leaves the default theme.
//
// Parameters:
//   - gdataManager: storage backend, may be nil
func NewThemeManager(gdataManager *gdata.Manager) *ThemeManager {
	tm := &ThemeManager{
		gdataManager: gdataManager,
		theme:        DefaultTheme,
	}

	if err := tm.Load(); err != nil {
		log.Printf("[ThemeManager] Warning: Failed to load theme: %v (using %s)", err, tm.theme)
	}

	return tm
}

// Load reads the saved theme. A missing preference or storage is not an
// error and yields the default theme.
func (tm *ThemeManager) Load() error {
	tm.theme = DefaultTheme

	if tm.gdataManager == nil {
		return nil
	}
	if !tm.gdataManager.ObjectPropExists(preferencesObject, themeProperty) {
		return nil
	}

	data, err := tm.gdataManager.LoadObjectProp(preferencesObject, themeProperty)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	var pref ThemePreference
	if err := yaml.Unmarshal(data, &pref); err != nil {
		return fmt.Errorf("failed to unmarshal theme: %w", err)
	}

	theme, err := ParseTheme(pref.Theme)
	if err != nil {
		return err
	}

	tm.theme = theme
	log.Printf("[ThemeManager] Loaded theme: %s", theme)
	return nil
}

// Save writes the current theme. In memory-only mode it does nothing.
func (tm *ThemeManager) Save() error {
	if tm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ThemePreference{Theme: tm.theme.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	if err := tm.gdataManager.SaveObjectProp(preferencesObject, themeProperty, data); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	log.Printf("[ThemeManager] Saved theme: %s", tm.theme)
	return nil
}

// Theme implements ThemeSource.
func (tm *ThemeManager) Theme() Theme {
	return tm.theme
}

// SetTheme changes the theme in memory; call Save to persist it.
func (tm *ThemeManager) SetTheme(theme Theme) {
	tm.theme = theme
}

// Toggle flips the theme and saves it. The new theme stays active even if
// saving fails.
func (tm *ThemeManager) Toggle() (Theme, error) {
	tm.theme = tm.theme.Toggle()
	return tm.theme, tm.Save()
}
