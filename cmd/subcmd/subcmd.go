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
	"os"

	"listmate/internal/orderedmap"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var subcmds = orderedmap.NewOrderedMap[string, *cli.Command]()

func init() {
	subcmds.Set("init", newInitCmd())
	subcmds.Set("version", newVersionCmd())
}

func GetSubCmds() *orderedmap.OrderedMap[string, *cli.Command] {
	return subcmds
}

// newDefaultCmd creates a new cli.Command with HideHelp and
// UseShortOptionHandling set, plus a -?/--help flag.
func newDefaultCmd() *cli.Command {
	cmd := &cli.Command{
		HideHelp:               true,
		UseShortOptionHandling: true,
	}
	cmd.Flags = append(cmd.Flags, &cli.BoolFlag{
		Name:               "help",
		Aliases:            []string{"?"},
		Usage:              "Show help information",
		DisableDefaultText: true,
	})
	return cmd
}

func PrintCommand(cmd, desc string) {
	fmt.Fprintf(os.Stdout, "%-30s: %s\n", color.GreenString(cmd), desc)
}
