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

	"github.com/walteh/presetsort/pkg/status"
)

// EventKind distinguishes the per-file progress events
type EventKind string

const (
	EventProcessed   EventKind = "processed"
	EventDuplicate   EventKind = "duplicate"
	EventLeftInPlace EventKind = "left-in-place"
	EventFailed      EventKind = "failed"
)

// 📣 Event is reported once for every discovered file
type Event struct {
	Kind       EventKind
	Root       string
	Name       string
	Path       string
	Categories []string // empty for duplicates
	Original   string   // where the content already lives, for duplicates
	Multi      bool
	Counter    int // 1-based position within Root
	Total      int // files discovered under Root
	Placements []status.Placement
	Err        error // first error, for failed files
}

// 👀 Observer receives progress from an organize run. Calls happen on the
// goroutine running Organize, one at a time.
type Observer interface {
	// OnScan reports the running count of files found while walking root
	OnScan(ctx context.Context, root string, found int)
	// OnFile reports the result for one file
	OnFile(ctx context.Context, ev Event)
}

// ObserverFunc adapts a function to an Observer that ignores scan progress
type ObserverFunc func(ctx context.Context, ev Event)

func (f ObserverFunc) OnScan(ctx context.Context, root string, found int) {}

func (f ObserverFunc) OnFile(ctx context.Context, ev Event) {
	f(ctx, ev)
}

type nopObserver struct{}

func (nopObserver) OnScan(context.Context, string, int) {}
func (nopObserver) OnFile(context.Context, Event)       {}
