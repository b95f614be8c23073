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
	"github.com/pkg/errors"
)

var errWrongNumberOfColumns = errors.New("wrong number of columns")

// resultSet feeds in-memory rows to tblfmt.
type resultSet struct {
	columns []string
	rows    [][]interface{}
	current int
}

func newResultSet(columns ...string) *resultSet {
	return &resultSet{columns: columns}
}

func (r *resultSet) add(values ...interface{}) {
	r.rows = append(r.rows, values)
}

func (r *resultSet) Len() int {
	return len(r.rows)
}

func (r *resultSet) Next() bool {
	r.current++
	return r.current <= len(r.rows)
}

func (r *resultSet) Columns() ([]string, error) {
	return r.columns, nil
}

func (r *resultSet) Scan(dest ...interface{}) error {
	v := r.rows[r.current-1]
	if len(v) != len(dest) {
		return errWrongNumberOfColumns
	}
	for i, d := range dest {
		p := d.(*interface{})
		*p = v[i]
	}
	return nil
}

func (r *resultSet) Close() error {
	return nil
}

func (r *resultSet) Err() error {
	return nil
}

func (r *resultSet) NextResultSet() bool {
	return false
}
