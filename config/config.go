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
	"embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"listmate/internal/utils"

	syslocale "github.com/jeandeaual/go-locale"
	"github.com/pkg/errors"
	"github.com/vimiix/pkg/file"
	"github.com/xo/terminfo"
	"gopkg.in/ini.v1"
)

//go:embed defaultconfig.ini
var defaultConfigFile embed.FS

var defaultConfig *Config

const defaultPrompt = "listmate[$n]> "

func Get() *Config {
	if defaultConfig == nil {
		defaultConfig = newDefault()
	}
	return defaultConfig
}

type Config struct {
	Prompt      string `ini:"prompt,omitempty"`
	LessChatty  bool   `ini:"less_chatty,omitempty"`
	MaxHistory  int    `ini:"max_history,omitempty"`
	LogLevel    string `ini:"log_level,omitempty"`
	Silence     bool   `ini:"silence,omitempty"`
	OnErrorStop bool   `ini:"on_error_stop,omitempty"`

	// auto detected fields
	NoColor bool   `ini:"-"`
	Locale  string `ini:"-"`

	Display `ini:"display"`
}

func (c *Config) ConfigMap() map[string]string {
	return map[string]string{
		"prompt":        c.Prompt,
		"less_chatty":   strconv.FormatBool(c.LessChatty),
		"max_history":   strconv.Itoa(c.MaxHistory),
		"log_level":     c.LogLevel,
		"silence":       strconv.FormatBool(c.Silence),
		"on_error_stop": strconv.FormatBool(c.OnErrorStop),
		"format":        c.Display.Format,
		"border":        strconv.Itoa(c.Display.Border),
	}
}

// PrintConfig returns the parameters handed to the table encoder.
func (c *Config) PrintConfig() map[string]string {
	return map[string]string{
		"format":        c.Display.Format,
		"border":        strconv.Itoa(c.Display.Border),
		"title":         c.Display.Title,
		"null":          c.Display.Null,
		"footer":        "on",
		"linestyle":     "ascii",
		"locale":        c.Locale,
		"numericlocale": "off",
		"csv_fieldsep":  ",",
		"fieldsep":      "|",
		"recordsep":     "\n",
		"tuples_only":   "off",
		"expanded":      "off",
	}
}

// LivePrompt expands the prompt template on every call; count reports the
// number of lists currently held.
func (c *Config) LivePrompt(count func() int) func() (string, bool) {
	return func() (string, bool) {
		if c.Prompt == "" {
			c.Prompt = defaultPrompt
		}

		rs := []rune(c.Prompt)
		var buf []byte
		end := len(rs)
		for i := 0; i < len(rs); i++ {
			if rs[i] != '$' {
				buf = append(buf, string(rs[i])...)
				continue
			}

			switch utils.Grab(rs, i+1, end) {
			case '$':
				buf = append(buf, '$')
			case 'n':
				buf = append(buf, []byte(strconv.Itoa(count()))...)
			case 'i':
				buf = append(buf, []byte(strconv.Itoa(os.Getpid()))...)
			default:
			}
			i++
		}
		return string(buf), true
	}
}

// Init loads the config file from DefaultLocation, creating it from the
// embedded default when missing.
func Init() error {
	cfg, err := Load(filepath.Join(DefaultLocation(), "config"))
	if err != nil {
		return err
	}
	defaultConfig = cfg
	return nil
}

// Load reads the config at path on top of the built-in defaults.
func Load(path string) (*Config, error) {
	cfg := newDefault()
	if err := writeDefaultConfig(path, false); err != nil {
		return nil, err
	}
	if err := ini.MapTo(cfg, path); err != nil {
		return nil, errors.Wrapf(err, "load config: %s", path)
	}
	return cfg, nil
}

// WriteDefault writes the embedded default config to DefaultLocation and
// returns its path.
func WriteDefault(overwrite bool) (string, error) {
	dest := filepath.Join(DefaultLocation(), "config")
	return dest, writeDefaultConfig(dest, overwrite)
}

func newDefault() *Config {
	noColor := false
	if s, ok := utils.Getenv("NO_COLOR"); ok {
		noColor = s != "0" && s != "false" && s != "off"
	}
	colorLevel, _ := terminfo.ColorLevelFromEnv()
	if colorLevel < terminfo.ColorLevelBasic {
		noColor = true
	}

	locale := "en-US"
	if s, err := syslocale.GetLocale(); err == nil {
		locale = s
	}

	return &Config{
		Prompt:     defaultPrompt,
		MaxHistory: 1000,
		LogLevel:   "info",
		NoColor:    noColor,
		Locale:     locale,
		Display: Display{
			Format: "aligned",
			Border: 1,
		},
	}
}

// DefaultLocation returns the default location of the config file, which is
// determined by the XDG configuration directory specification. If the
// XDG_CONFIG_HOME environment variable is not set, the default location is
// ~/.config/listmate/ on Unix systems and %USERPROFILE%\AppData\Local\listmate\
// on Windows.
func DefaultLocation() string {
	if os.Getenv("XDG_CONFIG_HOME") != "" {
		return file.ExpandHomePath(os.Getenv("XDG_CONFIG_HOME")) + "/listmate/"
	}
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE") + "\\AppData\\Local\\listmate\\"
	}
	return file.ExpandHomePath("~/.config/listmate/")
}

func writeDefaultConfig(dest string, overwrite bool) error {
	dest = file.ExpandHomePath(dest)
	if !overwrite && file.Exists(dest) {
		return nil
	}

	if err := file.EnsureDirExists(dest); err != nil {
		return errors.Wrapf(err, "create config dir for %s", dest)
	}

	src, err := defaultConfigFile.Open("defaultconfig.ini")
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}
