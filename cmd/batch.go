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
	"io"
	"os"
	"strings"

	"listmate/pkg/session"

	"github.com/pkg/errors"
)

// runBatch executes -c commands first, then the -f script.
func runBatch(s *session.Session, cmds []string, path string) error {
	if len(cmds) > 0 {
		if err := s.ExecAll(strings.NewReader(strings.Join(cmds, "\n"))); err != nil {
			return err
		}
	}
	if path == "" {
		return nil
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "open script")
		}
		defer f.Close()
		r = f
	}
	return s.ExecAll(r)
}
