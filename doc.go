// Package switcherprefs provides the preferences store of a window switcher.
//
// A Store layers a per-key read cache and a table of registered defaults over a
// persisted key-value Backend (memory, SQLite, PostgreSQL or a YAML settings file,
// see the storage package). Typed reads heal corrupted values by resetting them
// to their default, and Initialize migrates data written by older versions.
// Layout and theme parameters are derived from the stored appearance selections
// through the appearance package.
package switcherprefs
