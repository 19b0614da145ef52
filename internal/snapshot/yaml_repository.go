package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lifeos/internal/store"
)

const (
	filePrefix = "snapshot-"
	fileSuffix = ".yml"
	// fileTimeLayout sorts lexically in time order.
	fileTimeLayout = "20060102T150405.000000000Z"
)

// YAMLRepository keeps one YAML file per snapshot in a directory.
type YAMLRepository struct {
	directory string
}

// NewYAMLRepository creates a new YAMLRepository.
func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{directory: directory}
}

// FileName returns the file a snapshot taken at takenAt is written to.
func FileName(takenAt time.Time) string {
	return filePrefix + takenAt.UTC().Format(fileTimeLayout) + fileSuffix
}

func (r *YAMLRepository) Save(ctx context.Context, state store.State, takenAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.directory, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", r.directory, err)
	}

	data, err := yaml.Marshal(Snapshot{TakenAt: takenAt.UTC(), State: state.Normalize()})
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}

	path := filepath.Join(r.directory, FileName(takenAt))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", path, err)
	}
	return nil
}

func (r *YAMLRepository) Latest(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := r.fileNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return ReadFile(filepath.Join(r.directory, names[len(names)-1]))
}

// fileNames returns the snapshot files in the directory, oldest first.
func (r *YAMLRepository) fileNames() ([]string, error) {
	entries, err := os.ReadDir(r.directory)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", r.directory, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile decodes a single snapshot file, such as one written by `lifeos seed --out`.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	snapshot.State = snapshot.State.Normalize()
	return &snapshot, nil
}

// WriteFile encodes a snapshot to path.
func WriteFile(path string, snapshot Snapshot) error {
	data, err := yaml.Marshal(Snapshot{TakenAt: snapshot.TakenAt.UTC(), State: snapshot.State.Normalize()})
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
