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
	"sync"
)

// 🗂️ Registry maps a content digest to the first path holding that content.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]string)}
}

// Lookup returns the path registered for digest
func (r *Registry) Lookup(digest string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	path, ok := r.entries[digest]
	return path, ok
}

// Register records path for digest unless the digest is already known. It
// reports whether the entry was added.
func (r *Registry) Register(digest, path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[digest]; ok {
		return false
	}
	r.entries[digest] = path
	return true
}

// Len is the number of known digests
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
