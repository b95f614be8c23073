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


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listmate", "config")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	assert.Equal(t, "listmate[$n]>", cfg.Prompt)
	assert.Equal(t, 1000, cfg.MaxHistory)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.OnErrorStop)
	assert.Equal(t, "aligned", cfg.Display.Format)
	assert.Equal(t, 1, cfg.Display.Border)
}

func TestLoadCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	content := `
log_level = debug
on_error_stop = true
max_history = 10

[display]
format = csv
border = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.OnErrorStop)
	assert.Equal(t, 10, cfg.MaxHistory)
	assert.Equal(t, "csv", cfg.Display.Format)
	assert.Equal(t, 2, cfg.Display.Border)
	// keys missing from the file keep their defaults
	assert.Equal(t, defaultPrompt, cfg.Prompt)

	pc := cfg.PrintConfig()
	assert.Equal(t, "csv", pc["format"])
	assert.Equal(t, "2", pc["border"])
	assert.Equal(t, "debug", cfg.ConfigMap()["log_level"])
}

func TestLoadBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("[display\nformat = csv\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "load config")
}

func TestDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, dir+"/listmate/", DefaultLocation())

	path, err := WriteDefault(false)
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, Init())
	assert.Equal(t, "info", Get().LogLevel)
}

func TestLivePrompt(t *testing.T) {
	n := 0
	cfg := &Config{Prompt: "lists=$n $$> "}
	prefix := cfg.LivePrompt(func() int { return n })

	s, ok := prefix()
	assert.True(t, ok)
	assert.Equal(t, "lists=0 $> ", s)

	n = 3
	s, _ = prefix()
	assert.Equal(t, "lists=3 $> ", s)

	cfg.Prompt = ""
	s, _ = prefix()
	assert.Equal(t, "listmate[3]> ", s)
}

func TestMerge(t *testing.T) {
	cfg := newDefault()
	cfg.Merge(nil)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg.Merge(&Overrides{LogLevel: "error", Format: "json", Silence: true})
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Display.Format)
	assert.True(t, cfg.Silence)
	assert.False(t, cfg.LessChatty)
}
