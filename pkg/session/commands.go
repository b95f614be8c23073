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
	"strconv"

	"listmate/internal/orderedmap"
	"listmate/internal/utils"
	"listmate/pkg/linkedlist"

	"github.com/pkg/errors"
	"github.com/xo/tblfmt"
)

type command struct {
	args    string
	desc    string
	minArgs int
	// maxArgs < 0 means no upper bound.
	maxArgs int
	// nameArgs is how many leading arguments are list names, for completion.
	nameArgs int
	run      func(s *Session, args []string) error
}

var commands = orderedmap.NewOrderedMap[string, *command]()

func init() {
	commands.Set("new", &command{"NAME [VALUE...]", "create a list, optionally seeded with values", 1, -1, 0, (*Session).cmdNew})
	commands.Set("prepend", &command{"NAME VALUE...", "insert values at the front, one after another", 2, -1, 1, (*Session).cmdPrepend})
	commands.Set("append", &command{"NAME VALUE...", "insert values at the back", 2, -1, 1, (*Session).cmdAppend})
	commands.Set("first", &command{"NAME", "show the first value", 1, 1, 1, (*Session).cmdFirst})
	commands.Set("last", &command{"NAME", "show the last value", 1, 1, 1, (*Session).cmdLast})
	commands.Set("size", &command{"NAME", "show the number of values", 1, 1, 1, (*Session).cmdSize})
	commands.Set("index", &command{"NAME VALUE", "show the position of the first equal value, -1 if absent", 2, 2, 1, (*Session).cmdIndex})
	commands.Set("remove", &command{"NAME INDEX", "remove the value at INDEX, clamped to the nearest end", 2, 2, 1, (*Session).cmdRemove})
	commands.Set("delete", &command{"NAME VALUE", "remove the first equal value", 2, 2, 1, (*Session).cmdDelete})
	commands.Set("copy", &command{"SRC DST", "deep copy SRC into DST", 2, 2, 2, (*Session).cmdCopy})
	commands.Set("equal", &command{"A B", "compare two lists value by value", 2, 2, 2, (*Session).cmdEqual})
	commands.Set("print", &command{"NAME", "write the values separated by spaces", 1, 1, 1, (*Session).cmdPrint})
	commands.Set("show", &command{"NAME", "render the list as an index/value table", 1, 1, 1, (*Session).cmdShow})
	commands.Set("clear", &command{"NAME", "release every value of a list", 1, 1, 1, (*Session).cmdClear})
	commands.Set("drop", &command{"NAME", "forget a list", 1, 1, 1, (*Session).cmdDrop})
	commands.Set("lists", &command{"", "show list names in creation order", 0, 0, 0, (*Session).cmdLists})
	commands.Set("help", &command{"", "show this help", 0, 0, 0, (*Session).cmdHelp})
	commands.Set("quit", &command{"", "leave listmate", 0, 0, 0, (*Session).cmdQuit})
}

var aliases = map[string]string{
	`\?`:   "help",
	`\q`:   "quit",
	"exit": "quit",
}

func lookup(name string) (*command, string, bool) {
	if target, ok := aliases[name]; ok {
		name = target
	}
	cmd, ok := commands.Get(name)
	return cmd, name, ok
}

func (s *Session) list(name string) (*linkedlist.LinkedList[string], error) {
	l, ok := s.lists.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrListNotFound, "%q", name)
	}
	return l, nil
}

func (s *Session) printSize(name string, l *linkedlist.LinkedList[string]) {
	fmt.Fprintf(s.out, "%s: size=%d\n", name, l.Len())
}

func (s *Session) cmdNew(args []string) error {
	name := args[0]
	if s.lists.Has(name) {
		return errors.Wrapf(ErrListExists, "%q", name)
	}
	l := linkedlist.New[string]()
	for _, v := range args[1:] {
		l.Append(v)
	}
	s.lists.Set(name, l)
	s.printSize(name, l)
	return nil
}

func (s *Session) cmdPrepend(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	for _, v := range args[1:] {
		l.Prepend(v)
	}
	s.printSize(args[0], l)
	return nil
}

func (s *Session) cmdAppend(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	for _, v := range args[1:] {
		l.Append(v)
	}
	s.printSize(args[0], l)
	return nil
}

func (s *Session) cmdFirst(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	v, err := l.First()
	if err != nil {
		return errors.Wrapf(err, "list %q", args[0])
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *Session) cmdLast(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	v, err := l.Last()
	if err != nil {
		return errors.Wrapf(err, "list %q", args[0])
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *Session) cmdSize(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, l.Len())
	return nil
}

func (s *Session) cmdIndex(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, l.IndexOf(args[1]))
	return nil
}

func (s *Session) cmdRemove(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(ErrInvalidIndex, "%q", args[1])
	}
	v, err := l.Remove(index)
	if err != nil {
		return errors.Wrapf(err, "list %q", args[0])
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *Session) cmdDelete(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	if l.Delete(args[1]) {
		fmt.Fprintln(s.out, "deleted")
	} else {
		fmt.Fprintln(s.out, "not found")
	}
	return nil
}

// cmdCopy assigns over an existing destination rather than replacing it.
func (s *Session) cmdCopy(args []string) error {
	src, err := s.list(args[0])
	if err != nil {
		return err
	}
	dstName := args[1]
	dst, ok := s.lists.Get(dstName)
	if ok {
		dst.Assign(src)
	} else {
		dst = src.Clone()
		s.lists.Set(dstName, dst)
	}
	s.printSize(dstName, dst)
	return nil
}

func (s *Session) cmdEqual(args []string) error {
	a, err := s.list(args[0])
	if err != nil {
		return err
	}
	b, err := s.list(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, a.Equal(b))
	return nil
}

func (s *Session) cmdPrint(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	if _, err := l.WriteTo(s.out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out)
	return err
}

func (s *Session) cmdShow(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	rs := newResultSet("Index", "Value")
	i := 0
	l.Range(func(v string) {
		rs.add(i, v)
		i++
	})
	return tblfmt.EncodeAll(s.out, rs, s.cfg.PrintConfig())
}

func (s *Session) cmdClear(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	l.Clear()
	s.printSize(args[0], l)
	return nil
}

func (s *Session) cmdDrop(args []string) error {
	l, err := s.list(args[0])
	if err != nil {
		return err
	}
	l.Clear()
	s.lists.Delete(args[0])
	return nil
}

func (s *Session) cmdLists([]string) error {
	for _, row := range utils.Chunks(s.lists.Keys()) {
		for i, name := range row {
			if i > 0 {
				fmt.Fprint(s.out, "  ")
			}
			fmt.Fprint(s.out, name)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *Session) cmdHelp([]string) error {
	rs := newResultSet("Command", "Arguments", "Description")
	commands.Range(func(name string, cmd *command) {
		rs.add(name, cmd.args, cmd.desc)
	})
	params := s.cfg.PrintConfig()
	params["footer"] = "off"
	return tblfmt.EncodeAll(s.out, rs, params)
}

func (s *Session) cmdQuit([]string) error {
	return ErrQuit
}
