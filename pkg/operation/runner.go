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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/presetsort/pkg/status"
)

// hashResult is the digest of one file or the error that prevented it
type hashResult struct {
	digest string
	err    error
}

// 🏃 hashRunner hashes files on a bounded pool of goroutines
type hashRunner struct {
	workers int
}

// 🏗️ newHashRunner creates a new runner
func newHashRunner(workers int) *hashRunner {
	if workers < 1 {
		workers = 1
	}
	return &hashRunner{workers: workers}
}

// 🏃 Run hashes every path and returns results in the same order. Per-file
// failures land in the result; only cancellation fails the call.
func (r *hashRunner) Run(ctx context.Context, paths []string) ([]hashResult, error) {
	results := make([]hashResult, len(paths))

	if r.workers == 1 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return results, errors.Errorf("hashing cancelled: %w", err)
			}
			results[i].digest, results[i].err = status.Hash(path)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].digest, results[i].err = status.Hash(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, errors.Errorf("hashing cancelled: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Int("files", len(paths)).Int("workers", r.workers).Msg("hashed batch")
	return results, nil
}
