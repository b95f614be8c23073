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


package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	m := NewOrderedMap[int, string]()
	assert.Empty(t, m.Keys())

	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")
	assert.Equal(t, []int{3, 1, 2}, m.Keys())

	// updating an existing key keeps its place
	m.Set(3, "THREE")
	assert.Equal(t, []int{3, 1, 2}, m.Keys())
	assert.Equal(t, []string{"THREE", "one", "two"}, m.Values())
}

func TestSetGet(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("key1", 1)
	m.Set("key2", 2)

	v, ok := m.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = m.Get("key3")
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.True(t, m.Has("key2"))
	assert.False(t, m.Has("key3"))
	assert.Equal(t, 2, m.Len())
}

func TestPosition(t *testing.T) {
	m := NewOrderedMap[string, bool]()
	m.Set("a", true)
	m.Set("b", true)
	m.Set("c", true)

	assert.Equal(t, 0, m.Position("a"))
	assert.Equal(t, 2, m.Position("c"))
	assert.Equal(t, -1, m.Position("z"))

	m.Delete("a")
	assert.Equal(t, 0, m.Position("b"))
	assert.Equal(t, -1, m.Position("a"))
}

func TestDelete(t *testing.T) {
	m := NewOrderedMap[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")

	assert.True(t, m.Delete(1))
	_, ok := m.Get(1)
	assert.False(t, ok)
	assert.False(t, m.Delete(1))
	assert.Equal(t, []int{2}, m.Keys())

	// a deleted key goes to the back when set again
	m.Set(1, "one")
	assert.Equal(t, []int{2, 1}, m.Keys())
}

func TestOrderedMap_Range(t *testing.T) {
	m := NewOrderedMap[string, int]()
	var count int
	m.Range(func(string, int) {
		count++
	})
	assert.Zero(t, count)

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	var keys []string
	var sum int
	m.Range(func(k string, v int) {
		keys = append(keys, k)
		sum += v
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, 6, sum)
}

func TestClear(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("key1", 1)
	m.Set("key2", 2)

	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Zero(t, m.keys.Len())
	assert.Empty(t, m.m)
}
