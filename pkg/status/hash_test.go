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
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty",
			content: "",
			want:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:    "short",
			content: "abc",
			want:    "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(dir, tt.name+".fxp"), tt.content)
			got, err := Hash(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashLargeFileMatchesReader(t *testing.T) {
	content := strings.Repeat("0123456789abcdef", ChunkSize/8) // two full chunks
	path := writeFile(t, filepath.Join(t.TempDir(), "big.fxp"), content)

	fromFile, err := Hash(path)
	require.NoError(t, err)

	fromReader, err := HashReader(iotest.OneByteReader(bytes.NewReader([]byte(content))))
	require.NoError(t, err)

	assert.Equal(t, fromReader, fromFile, "chunking must not change the digest")
}

func TestHashIdentityIgnoresName(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "Bass_Sound.fxp"), "same")
	b := writeFile(t, filepath.Join(dir, "Bass_Outro.fxp"), "same")
	c := writeFile(t, filepath.Join(dir, "Other.fxp"), "different")

	assert.Equal(t, mustHash(t, a), mustHash(t, b))
	assert.NotEqual(t, mustHash(t, a), mustHash(t, c))
}

func TestHashMissingFile(t *testing.T) {
	_, err := Hash(filepath.Join(t.TempDir(), "vanished.fxp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file for hashing")
}

func TestHashReaderError(t *testing.T) {
	_, err := HashReader(iotest.ErrReader(assert.AnError))
	require.ErrorIs(t, err, assert.AnError)
}
