package switcherprefs

import (
	"errors"
	"testing"
)

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		key   string
		raw   string
		valid bool
	}{
		{"holdShortcut", "⌘", true},
		{"holdShortcut", "", true},
		{"arrowKeysEnabled", "true", true},
		{"arrowKeysEnabled", "yes", false},
		{"rowsCount", "6", true},
		{"rowsCount", "six", false},
		{"windowDisplayDelay", "250", true},
		{"windowDisplayDelay", "0.5", false},
		{"appearanceStyle", "2", true},
		{"appearanceStyle", "3", false},
		{"spacesToShow", "2", true},
		{"spacesToShow", "1", false},
		{"menubarIcon", "3", true},
		{"language", "49", true},
		{"language", "50", false},
		{"blacklist", `[{"bundleIdentifier":"com.apple.finder","hide":"2","ignore":"0"}]`, true},
		{"blacklist", "com.apple.finder", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			def, ok := LookupDefinition(tt.key)
			if !ok {
				t.Fatalf("Expected %q to be defined", tt.key)
			}
			err := def.Validate(tt.raw)
			if tt.valid && err != nil {
				t.Errorf("Expected %q to be valid for %s, got: %v", tt.raw, tt.key, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Expected ErrInvalidValue for %q on %s, got: %v", tt.raw, tt.key, err)
			}
		})
	}
}

func TestValidateEntries(t *testing.T) {
	err := ValidateEntries(map[string]string{
		"appearanceTheme": "1",
		"holdShortcut2":   "⌃",
		"iconSize":        "40",
	})
	if err != nil {
		t.Errorf("Expected valid entries, got: %v", err)
	}

	err = ValidateEntries(map[string]string{"appearanceTheme": "1", "notAPreference": "x"})
	if !errors.Is(err, ErrPreferenceNotDefined) {
		t.Errorf("Expected ErrPreferenceNotDefined, got: %v", err)
	}

	err = ValidateEntries(map[string]string{"appearanceTheme": "dark"})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got: %v", err)
	}

	err = ValidateEntries(map[string]string{"": "1"})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Expected ErrInvalidKey, got: %v", err)
	}
}
