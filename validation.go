// validation.go
package switcherprefs

import (
	"fmt"
	"sort"
)

// Validate reports whether raw is an acceptable persisted value for the definition.
func (d Definition) Validate(raw string) error {
	if d.validate == nil {
		return nil
	}
	if err := d.validate(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

// ValidateEntries checks a batch of raw entries before any is written.
// Unknown keys are rejected with ErrPreferenceNotDefined.
func ValidateEntries(entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" {
			return ErrInvalidKey
		}
		def, ok := LookupDefinition(k)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPreferenceNotDefined, k)
		}
		if err := def.Validate(entries[k]); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	return nil
}
