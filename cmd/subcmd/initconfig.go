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
	"fmt"
	"sort"

	"listmate/config"

	"github.com/urfave/cli/v2"
)

func newInitCmd() *cli.Command {
	cmd := newDefaultCmd()
	cmd.Name = "init"
	cmd.Usage = "Write the default config file"
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:               "force",
		Aliases:            []string{"F"},
		Usage:              "Overwrite an existing config file",
		DisableDefaultText: true,
	})
	cmd.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowSubcommandHelp(c)
		}
		path, err := config.WriteDefault(c.Bool("force"))
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		PrintCommand(path, "config ready")
		m := cfg.ConfigMap()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", k, m[k])
		}
		return nil
	}
	return cmd
}
