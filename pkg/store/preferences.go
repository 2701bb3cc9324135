package store

import "github.com/fenestra-app/fenestra/pkg/errors"

// Theme is a persisted UI theme choice.
type Theme string

// Valid theme values. Anything else is rejected at the write boundary.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Validate checks that the theme is one of the three allowed values.
func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return nil
	default:
		return errors.Newf(errors.ErrValidation,
			"invalid theme %q: must be 'light', 'dark', or 'system'", string(t))
	}
}

// Preferences holds the settings that are persisted to disk.
// Only add fields here that should survive a restart.
type Preferences struct {
	Theme Theme `json:"theme"`
}

// DefaultPreferences returns the preferences used when no file exists yet.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeSystem}
}

// Validate checks every field of the preferences record.
func (p Preferences) Validate() error {
	return p.Theme.Validate()
}
