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


package session

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vimiix/go-prompt"
)

func (s *Session) complete(d prompt.Document) []prompt.Suggest {
	return s.suggest(d.TextBeforeCursor())
}

// suggest completes the word under the cursor: a command name first, then
// list names for as many arguments as the command takes names.
func (s *Session) suggest(before string) []prompt.Suggest {
	words := strings.Fields(before)
	word := ""
	if len(words) > 0 && !endsWithSpace(before) {
		word = words[len(words)-1]
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		return prompt.FilterHasPrefix(commandSuggests(), word, true)
	}

	cmd, _, ok := lookup(words[0])
	if !ok || len(words) > cmd.nameArgs {
		return nil
	}
	rs := make([]prompt.Suggest, 0, s.lists.Len())
	s.lists.Range(func(name string, l *listType) {
		rs = append(rs, prompt.Suggest{Text: name, Description: fmt.Sprintf("size=%d", l.Len())})
	})
	return prompt.FilterHasPrefix(rs, word, false)
}

func endsWithSpace(s string) bool {
	r := []rune(s)
	return len(r) > 0 && unicode.IsSpace(r[len(r)-1])
}

func commandSuggests() []prompt.Suggest {
	rs := make([]prompt.Suggest, 0, commands.Len())
	commands.Range(func(name string, cmd *command) {
		rs = append(rs, prompt.Suggest{Text: name, Description: cmd.desc})
	})
	return rs
}
