package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lifeos/internal/store"
	"github.com/at-ishikawa/lifeos/internal/testutil"
)

func TestFileName(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	tests := []struct {
		name    string
		takenAt time.Time
		want    string
	}{
		{
			name:    "utc time",
			takenAt: time.Date(2024, 3, 13, 10, 30, 0, 0, time.UTC),
			want:    "snapshot-20240313T103000.000000000Z.yml",
		},
		{
			name:    "converted to utc",
			takenAt: time.Date(2024, 3, 13, 19, 30, 0, 5, jst),
			want:    "snapshot-20240313T103000.000000005Z.yml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.takenAt))
		})
	}
}

func TestYAMLRepository_SaveAndLatest(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "snapshots")
	repo := NewYAMLRepository(dir)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "missing directory has no snapshot")

	older := store.Empty()
	newer := testutil.SeededState(t)

	require.NoError(t, repo.Save(ctx, newer, testutil.Now))
	require.NoError(t, repo.Save(ctx, older, testutil.Now.Add(-time.Hour)))
	// Files that aren't snapshots are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.yml"), []byte("x: 1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "snapshot-99999999T000000.000000000Z.txt"), []byte("x"), 0o644))

	got, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, testutil.Now.Equal(got.TakenAt))
	if diff := cmp.Diff(newer, got.State); diff != "" {
		t.Errorf("Latest() state mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestYAMLRepository_EmptyStateIsNormalized(t *testing.T) {
	ctx := context.Background()
	repo := NewYAMLRepository(t.TempDir())

	require.NoError(t, repo.Save(ctx, store.State{}, testutil.Now))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.State.Tasks)
	assert.NotNil(t, got.State.StudyPlan)
	assert.Equal(t, store.Empty(), got.State)
}

func TestYAMLRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewYAMLRepository(t.TempDir())

	assert.ErrorIs(t, repo.Save(ctx, store.Empty(), testutil.Now), context.Canceled)
	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestYAMLRepository_Latest_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(testutil.Now)), []byte("tasks: [\n"), 0o644))

	_, err := NewYAMLRepository(dir).Latest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml.Unmarshal")
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seed.yml")
	want := Snapshot{TakenAt: testutil.Now, State: testutil.SeededState(t)}

	require.NoError(t, WriteFile(path, want))

	got, err := ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
