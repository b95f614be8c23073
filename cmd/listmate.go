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
	"fmt"
	"os"
	"time"

	"listmate/cmd/subcmd"
	"listmate/config"
	"listmate/internal/logger"
	"listmate/internal/utils"
	"listmate/pkg/session"
	"listmate/pkg/version"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	authors = []*cli.Author{
		{Name: "Vimiix", Email: "i@vimiix.com"},
	}
	copyright = func() string {
		yearRange := "2024"
		nowYear := time.Now().Year()
		if nowYear > 2024 {
			yearRange = fmt.Sprintf("2024-%d", nowYear)
		}
		return fmt.Sprintf("Copyright (C) %s Vimiix", yearRange)
	}
)

func main() {
	overrides := &config.Overrides{}
	app := cli.NewApp()
	app.Name = "listmate"
	app.Usage = "Interactive shell for generic linked lists"
	app.Version = version.Version
	app.HideVersion = true // self control version flag to ensure help massage style is consistent
	app.Authors = authors
	app.Copyright = copyright()
	app.EnableBashCompletion = true
	app.UseShortOptionHandling = true
	app.HideHelp = true
	app.Suggest = true
	app.Commands = subcmd.GetSubCmds().Values()
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:               "help",
			Aliases:            []string{"?"},
			Usage:              "Show help information",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "Print the version",
			DisableDefaultText: true,
		},
		&cli.StringSliceFlag{
			Name:    "command",
			Aliases: []string{"c"},
			Usage:   "Run a command and exit, may be repeated",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Run commands from a file (- for stdin) and exit",
		},
		&cli.StringFlag{
			Name:        "log-level",
			EnvVars:     []string{"LISTMATE_LOG_LEVEL"},
			Destination: &overrides.LogLevel,
			Usage:       "Log level: debug, info, warn, error or fatal",
			Action: func(ctx *cli.Context, v string) error {
				_, err := logger.ParseLevel(v)
				return err
			},
		},
		&cli.StringFlag{
			Name:        "format",
			EnvVars:     []string{"LISTMATE_FORMAT"},
			Destination: &overrides.Format,
			Usage:       "Table format used by show",
		},
		&cli.BoolFlag{
			Name:               "silence",
			Aliases:            []string{"s"},
			EnvVars:            []string{"LISTMATE_SILENCE"},
			Destination:        &overrides.Silence,
			Usage:              "Mute log output",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "less-chatty",
			Aliases:            []string{"q"},
			Destination:        &overrides.LessChatty,
			Usage:              "Skip the startup banner",
			DisableDefaultText: true,
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.Bool("help") {
			return cli.ShowAppHelp(c)
		}
		if c.Bool("version") {
			fmt.Println(version.GetVersionDetail())
			return nil
		}

		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Get()
		cfg.Merge(overrides)

		if cfg.NoColor {
			color.NoColor = true
		}
		if cfg.Silence {
			logger.MuteLogger()
		} else {
			logger.SetLogLevelByString(cfg.LogLevel)
		}

		s := session.New(cfg, os.Stdout)
		if cmds, path := c.StringSlice("command"), c.String("file"); len(cmds) > 0 || path != "" {
			return runBatch(s, cmds, path)
		}
		return s.Run()
	}
	if err := app.Run(os.Args); err != nil {
		utils.PrintError(err)
		os.Exit(1)
	}
}
