// storage/storage.go
package storage

import (
	"github.com/CreativeUnicorns/switcherprefs"
)

var (
	_ switcherprefs.Backend = (*MemoryStorage)(nil)
	_ switcherprefs.Backend = (*SQLiteStorage)(nil)
	_ switcherprefs.Backend = (*PostgresStorage)(nil)
	_ switcherprefs.Backend = (*FileStorage)(nil)
)

func copyEntries(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
