// Package datasync copies snapshots between repositories, for example from YAML files to MySQL.
package datasync

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/at-ishikawa/lifeos/internal/snapshot"
)

// Result tracks what a sync did.
type Result struct {
	Copied  bool
	Skipped bool
	// Invalid counts dangling references found in the copied state.
	Invalid int
	Sizes   map[string]int
}

// Options controls sync behavior.
type Options struct {
	DryRun bool
	// Force copies even when the destination already has an equal or newer snapshot.
	Force bool
	// Strict refuses to copy a state with dangling references.
	Strict bool
}

// Syncer copies the latest snapshot of source into destination.
type Syncer struct {
	source      snapshot.Repository
	destination snapshot.Repository
	writer      io.Writer
}

// NewSyncer creates a new Syncer.
func NewSyncer(source, destination snapshot.Repository, writer io.Writer) *Syncer {
	return &Syncer{
		source:      source,
		destination: destination,
		writer:      writer,
	}
}

// Sync copies the newest source snapshot unless the destination is already up to date.
func (s *Syncer) Sync(ctx context.Context, opts Options) (*Result, error) {
	var result Result

	latest, err := s.source.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.Latest() > %w", err)
	}
	if latest == nil {
		fmt.Fprintln(s.writer, "  [SKIP]  source has no snapshot")
		result.Skipped = true
		return &result, nil
	}
	result.Sizes = latest.State.Sizes()

	dangling := latest.State.Integrity()
	result.Invalid = len(dangling)
	for _, d := range dangling {
		fmt.Fprintf(s.writer, "  [WARN]  %s\n", d)
	}
	if opts.Strict && len(dangling) > 0 {
		return &result, fmt.Errorf("snapshot taken at %s has %d dangling references", latest.TakenAt.Format("2006-01-02T15:04:05Z07:00"), len(dangling))
	}

	if !opts.Force {
		current, err := s.destination.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("destination.Latest() > %w", err)
		}
		if current != nil && !current.TakenAt.Before(latest.TakenAt) {
			fmt.Fprintf(s.writer, "  [SKIP]  destination is up to date (%s)\n", current.TakenAt.UTC().Format("2006-01-02T15:04:05Z"))
			result.Skipped = true
			return &result, nil
		}
	}

	if opts.DryRun {
		fmt.Fprintf(s.writer, "  [DRY-RUN]  would copy snapshot taken at %s\n", latest.TakenAt.UTC().Format("2006-01-02T15:04:05Z"))
	} else {
		if err := s.destination.Save(ctx, latest.State, latest.TakenAt); err != nil {
			return nil, fmt.Errorf("destination.Save() > %w", err)
		}
		fmt.Fprintf(s.writer, "  [COPY]  snapshot taken at %s\n", latest.TakenAt.UTC().Format("2006-01-02T15:04:05Z"))
		result.Copied = true
	}
	s.printSizes(result.Sizes)
	return &result, nil
}

func (s *Syncer) printSizes(sizes map[string]int) {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.writer, "    %-14s %d\n", name, sizes[name])
	}
}
