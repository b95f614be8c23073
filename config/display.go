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

// Display controls how tables are rendered by the show and help commands.
type Display struct {
	Format string `ini:"format,omitempty"`
	Border int    `ini:"border,omitempty"`
	Title  string `ini:"title,omitempty"`
	Null   string `ini:"null,omitempty"`
}

// Overrides carries values given on the command line. Zero values leave the
// loaded config untouched.
type Overrides struct {
	LogLevel   string
	Format     string
	Silence    bool
	LessChatty bool
}

func (c *Config) Merge(o *Overrides) {
	if o == nil {
		return
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Format != "" {
		c.Display.Format = o.Format
	}
	if o.Silence {
		c.Silence = true
	}
	if o.LessChatty {
		c.LessChatty = true
	}
}
