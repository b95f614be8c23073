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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"listmate/config"
	"listmate/internal/logger"
	"listmate/internal/orderedmap"
	"listmate/internal/utils"
	"listmate/pkg/linkedlist"
	"listmate/pkg/version"

	"github.com/pkg/errors"
	"github.com/vimiix/go-prompt"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgs      = errors.New("wrong number of arguments")
	ErrListNotFound   = errors.New("list not found")
	ErrListExists     = errors.New("list already exists")
	ErrInvalidIndex   = errors.New("index is not an integer")
	// ErrQuit is returned by Exec for quit, exit and \q.
	ErrQuit = errors.New("quit")
)

var dummyExecutor = func(string) {}

type listType = linkedlist.LinkedList[string]

// Session holds named string lists and executes shell commands against them.
type Session struct {
	cfg     *config.Config
	out     io.Writer
	lists   *orderedmap.OrderedMap[string, *listType]
	prompt  *prompt.Prompt
	history *History
}

func New(cfg *config.Config, out io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	return &Session{
		cfg:   cfg,
		out:   out,
		lists: orderedmap.NewOrderedMap[string, *listType](),
	}
}

// Names returns the list names in creation order.
func (s *Session) Names() []string {
	return s.lists.Keys()
}

// Exec runs one command line. Blank lines are ignored.
func (s *Session) Exec(line string) error {
	args, err := utils.Tokenize(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	cmd, name, ok := lookup(args[0])
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return errors.Wrapf(ErrWrongArgs, "usage: %s %s", name, cmd.args)
	}
	logger.Debug("exec %s %v", name, args)
	return cmd.run(s, args)
}

// ExecAll runs every line read from r, skipping blank lines and lines
// starting with #. A quit command stops reading without error.
func (s *Session) ExecAll(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if utils.EmptyStr(line) || strings.HasPrefix(line, "#") {
			continue
		}
		err := s.Exec(line)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if s.cfg.OnErrorStop {
			return errors.Wrapf(err, "line %d", lineno)
		}
		logger.Error("line %d: %v", lineno, err)
	}
	return scanner.Err()
}

// Run is the interactive loop. It returns when the user quits or the
// prompt is closed with ctrl-D.
func (s *Session) Run() error {
	history, err := NewHistory(s.cfg.MaxHistory, historyFile())
	if err != nil {
		return err
	}
	s.history = history
	defer func() {
		if err := s.history.Persist(); err != nil {
			logger.Warn("save history: %v", err)
		}
	}()

	s.prompt = prompt.New(dummyExecutor,
		s.complete,
		prompt.OptionTitle("listmate"),
		prompt.OptionHistory(s.history.Records()),
		prompt.OptionInputTextColor(prompt.Yellow),
		prompt.OptionLivePrefix(s.cfg.LivePrompt(s.lists.Len)),
	)

	if !s.cfg.LessChatty {
		fmt.Fprintf(s.out, "listmate %s (%s)\n", version.Version, version.Commit)
		fmt.Fprintln(s.out, `Type "help" for more information.`)
		fmt.Fprintln(s.out)
	}

	for {
		line, err := s.prompt.Input()
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				return nil
			}
			return err
		}
		if utils.EmptyStr(line) {
			continue
		}
		s.history.Add(line)

		err = s.Exec(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			utils.PrintError(err)
		}
	}
}
