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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📇 IndexDestination seeds a registry with every supported preset already
// under dest, so content filed by an earlier run under any name counts as a
// duplicate. Directories in exclude (usually the sources) are not indexed.
// A missing dest yields an empty registry.
func (o *Organizer) IndexDestination(ctx context.Context, dest string, exclude ...string) (*Registry, error) {
	logger := zerolog.Ctx(ctx)
	reg := NewRegistry()

	if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
		return reg, nil
	}

	var prune []string
	for _, ex := range exclude {
		abs, err := filepath.Abs(ex)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", ex, err)
		}
		prune = append(prune, abs)
	}

	files, walkErrs, err := Discover(ctx, dest, DiscoverOptions{
		Match: o.classifier.HasSupportedExtension,
		Prune: prune,
	})
	if err != nil {
		return nil, errors.Errorf("indexing destination: %w", err)
	}
	for _, fe := range walkErrs {
		logger.Warn().Err(fe.Err).Str("path", fe.Path).Msg("skipping unreadable entry while indexing")
	}

	hashes, err := newHashRunner(o.workers).Run(ctx, files)
	if err != nil {
		return nil, errors.Errorf("indexing destination: %w", err)
	}
	for i, h := range hashes {
		if h.err != nil {
			logger.Warn().Err(h.err).Str("path", files[i]).Msg("skipping unreadable preset while indexing")
			continue
		}
		reg.Register(h.digest, files[i])
	}

	logger.Info().Str("destination", dest).Int("files", len(files)).Int("digests", reg.Len()).Msg("indexed destination")
	return reg, nil
}
