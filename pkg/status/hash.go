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

package status

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// ChunkSize is the read size used while hashing
const ChunkSize = 64 * 1024

// 🔍 Hash streams the file at path through SHA-256 and returns the hex digest.
// Memory use is bounded by ChunkSize regardless of file size.
func Hash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening file for hashing: %w", err)
	}
	defer f.Close()

	digest, err := HashReader(f)
	if err != nil {
		return "", errors.Errorf("hashing %s: %w", path, err)
	}
	return digest, nil
}

// HashReader hashes everything r yields
func HashReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, ChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Errorf("reading content: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
