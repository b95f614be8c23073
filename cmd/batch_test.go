// Copyright 2024 Qian Yao
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"listmate/config"
	"listmate/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.lm")
	require.NoError(t, os.WriteFile(script, []byte("append l 33\nprint l\n"), 0o644))

	var buf bytes.Buffer
	s := session.New(&config.Config{}, &buf)
	require.NoError(t, runBatch(s, []string{"new l", "prepend l 22 11"}, script))
	assert.Contains(t, buf.String(), "11 22 33\n")

	err := runBatch(s, nil, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "open script")
}
