// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/classify"
	"github.com/walteh/presetsort/pkg/status"
)

// run is the state of one Organize call
type run struct {
	*Organizer
	mode     Mode
	registry *Registry
	mgr      *status.Manager
	hasher   *hashRunner
}

// 🎯 Organize files every supported preset under req.Sources into
// req.Destination/<category>/. Per-file problems are recorded in the returned
// statistics and never stop the run. An error is returned when a source root
// is unusable, before anything is touched, or when ctx is cancelled, together
// with the statistics gathered so far.
func (o *Organizer) Organize(ctx context.Context, req Request) (*status.Stats, error) {
	logger := zerolog.Ctx(ctx)

	sources, dest, mode, err := o.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, errors.Errorf("creating destination: %w", err)
	}

	registry := req.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	r := &run{
		Organizer: o,
		mode:      mode,
		registry:  registry,
		mgr:       status.New(dest),
		hasher:    newHashRunner(o.workers),
	}

	logger.Info().
		Strs("sources", sources).
		Str("destination", dest).
		Stringer("mode", mode).
		Int("seeded", registry.Len()).
		Msg("organizing presets")

	total := status.NewStats()
	for _, root := range sources {
		rs, err := r.organizeRoot(ctx, root)
		total.Merge(root, rs)
		if err != nil {
			return total, err
		}
	}

	logger.Info().
		Int("seen", total.FilesSeen).
		Int("copies", total.Copies).
		Int("moves", total.Moves).
		Int("duplicates", total.Duplicates).
		Int("errors", len(total.Errors)).
		Msg("organize complete")

	return total, nil
}

// within reports whether path is dir or lies below it
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (r *run) organizeRoot(ctx context.Context, root string) (*status.Stats, error) {
	logger := zerolog.Ctx(ctx).With().Str("root", root).Logger()
	ctx = logger.WithContext(ctx)

	rs := status.NewStats()

	opts := DiscoverOptions{
		Match:  r.classifier.HasSupportedExtension,
		Ignore: r.ignore,
		OnScan: func(found int) {
			r.observer.OnScan(ctx, root, found)
		},
	}
	// a destination nested in the source would otherwise be refiled
	if dest := r.mgr.Root(); dest != root && within(dest, root) {
		opts.Prune = append(opts.Prune, dest)
	}

	files, walkErrs, err := Discover(ctx, root, opts)
	rs.Errors = append(rs.Errors, walkErrs...)
	if err != nil {
		return rs, err
	}

	logger.Info().Int("files", len(files)).Msg("discovered presets")

	batch := r.workers * 4
	for start := 0; start < len(files); start += batch {
		end := min(start+batch, len(files))

		hashes, err := r.hasher.Run(ctx, files[start:end])
		if err != nil {
			return rs, errors.Errorf("organizing %s: %w", root, err)
		}

		for i, path := range files[start:end] {
			if err := ctx.Err(); err != nil {
				return rs, errors.Errorf("organizing %s: %w", root, err)
			}
			ev := r.processFile(ctx, rs, path, hashes[i])
			ev.Root = root
			ev.Counter = start + i + 1
			ev.Total = len(files)
			r.observer.OnFile(ctx, ev)
		}
	}

	return rs, nil
}

// processFile runs one file through the per-file state machine and returns
// the event describing where it ended.
func (r *run) processFile(ctx context.Context, rs *status.Stats, path string, h hashResult) Event {
	logger := zerolog.Ctx(ctx)
	name := filepath.Base(path)
	ev := Event{Name: name, Path: path}
	rec := status.FileRecord{Source: path}

	rs.FilesSeen++
	defer func() {
		rs.Files = append(rs.Files, rec)
	}()

	if h.err != nil {
		rs.RecordError(path, "", h.err)
		ev.Kind = EventFailed
		ev.Err = h.err
		return ev
	}

	categories, via := r.classifier.Resolve(name)
	rec.Categories = categories
	rec.Multi = len(categories) > 1

	// registry hit: content already filed, nothing is touched
	if original, ok := r.registry.Lookup(h.digest); ok {
		rs.Duplicates++
		rec.Duplicate = true
		rec.Original = original
		for _, cat := range categories {
			rec.Placements = append(rec.Placements, status.Placement{Category: cat, Outcome: status.OutcomeSkippedDuplicate})
		}
		logger.Debug().Str("file", path).Str("original", original).Msg("duplicate content")
		ev.Kind = EventDuplicate
		ev.Original = original
		ev.Placements = rec.Placements
		return ev
	}

	if rec.Multi {
		rs.MultiCategory++
	}
	ev.Categories = categories
	ev.Multi = rec.Multi

	// re-verification never relocates a file that still has no category
	if r.mode == ModeMove && via == classify.ViaCatchAll {
		rs.LeftInPlace++
		rec.LeftInPlace = true
		logger.Debug().Str("file", path).Msg("still uncategorized, left in place")
		ev.Kind = EventLeftInPlace
		return ev
	}

	method := status.MethodCopy
	if r.mode == ModeMove {
		method = status.MethodMove
	}

	var (
		current      = path // where the content can be read from
		moved        bool
		placedAny    bool
		failed       bool
		firstPresent bool
	)

	for i, cat := range categories {
		m := method
		if moved {
			m = status.MethodCopy
		}

		p := r.mgr.Place(ctx, current, h.digest, cat, m)
		rec.Placements = append(rec.Placements, p)

		switch {
		case p.Outcome == status.OutcomeFailed:
			failed = true
			rs.RecordError(path, cat, p.Err)
			if ev.Err == nil {
				ev.Err = p.Err
			}
		case p.Outcome.Placed():
			placedAny = true
			rs.RecordPlacement(p)
			if p.Moved {
				moved = true
				current = p.Path
			}
		default:
			if i == 0 {
				firstPresent = true
			}
			// the source already is this category's copy, so later
			// categories must copy it rather than take it away
			if m == status.MethodMove && status.SameFile(current, p.Path) {
				moved = true
			}
		}

		if p.Outcome.Satisfied() {
			r.registry.Register(h.digest, p.Path)
		}
	}

	// the content was already filed, so in move mode the source is leftover
	if r.mode == ModeMove && !moved && !failed && firstPresent && r.removable(path, rec.Placements) {
		if err := r.mgr.Remove(ctx, path); err != nil {
			failed = true
			rs.RecordError(path, "", err)
			if ev.Err == nil {
				ev.Err = err
			}
		} else {
			rs.DeletedFromSource++
		}
	}

	ev.Placements = rec.Placements

	switch {
	case failed:
		ev.Kind = EventFailed
		if placedAny {
			rs.FilesPlaced++
		}
	case placedAny:
		rs.FilesPlaced++
		ev.Kind = EventProcessed
	default:
		// every category already held this content
		rs.Duplicates++
		rs.AlreadyPresent++
		rec.Duplicate = true
		rec.Original = rec.Placements[0].Path
		ev.Kind = EventDuplicate
		ev.Original = rec.Original
	}

	return ev
}

// removable reports whether deleting path keeps its content available: no
// placement may be path itself.
func (r *run) removable(path string, placements []status.Placement) bool {
	for _, p := range placements {
		if p.Path == "" || status.SameFile(path, p.Path) {
			return false
		}
	}
	return true
}
