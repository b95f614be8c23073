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


package subcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestGetSubCmds(t *testing.T) {
	cmds := GetSubCmds()
	assert.Equal(t, []string{"init", "version"}, cmds.Keys())

	for _, cmd := range cmds.Values() {
		assert.NotEmpty(t, cmd.Usage, cmd.Name)
		assert.NotNil(t, cmd.Action, cmd.Name)
	}
}

func TestInitCmdWritesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	app := cli.NewApp()
	app.Commands = GetSubCmds().Values()
	assert.NoError(t, app.Run([]string{"listmate", "init"}))
	assert.FileExists(t, dir+"/listmate/config")
	assert.NoError(t, app.Run([]string{"listmate", "init", "--force"}))
}
