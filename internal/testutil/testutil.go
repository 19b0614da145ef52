// Package testutil provides shared test helpers for config files and state fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lifeos/internal/seed"
	"github.com/at-ishikawa/lifeos/internal/store"
)

// Now is the reference time fixtures are generated at: Wednesday 2024-03-13 10:30 UTC.
var Now = time.Date(2024, time.March, 13, 10, 30, 0, 0, time.UTC)

// SetupTestConfig creates a config file that keeps YAML snapshots and reports under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"snapshots", "reports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`snapshot:
  backend: yaml
  directory: %s
seed:
  enabled: true
metrics:
  enabled: false
timezone: UTC
report:
  output_directory: %s
`,
		filepath.Join(tmpDir, "snapshots"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithServer appends a client section pointing at serverURL.
func SetupTestConfigWithServer(t *testing.T, tmpDir, serverURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("client:\n  server_url: %s\n  timeout_seconds: 5\n  retry_attempts: 1\n", serverURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) seed.IDFunc {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// SeededState returns the sample state generated at Now with predictable ids.
func SeededState(t *testing.T) store.State {
	t.Helper()
	return seed.Generate(Now, SequentialIDs("id"))
}
