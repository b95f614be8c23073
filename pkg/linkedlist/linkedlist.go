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


// Package linkedlist implements a generic doubly linked list that owns its
// nodes exclusively. Copies made with Clone or Assign never share a node with
// their source.
//
// A LinkedList is not safe for concurrent use.
package linkedlist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// NotFound is returned by IndexOf when no element matches.
const NotFound = -1

// ErrUnderflow is returned when an operation needs at least one element
// and the list is empty.
var ErrUnderflow = errors.New("list underflow")

type node[T comparable] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// LinkedList is a list of comparable values. The zero value is an empty list
// ready to use.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Len returns the number of elements in the linked list. A nil list has
// length zero.
func (l *LinkedList[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty returns true if the linked list is empty.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// First returns the value at the front of the list.
func (l *LinkedList[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.WithMessage(ErrUnderflow, "first")
	}
	return l.head.value, nil
}

// Last returns the value at the back of the list.
func (l *LinkedList[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.WithMessage(ErrUnderflow, "last")
	}
	return l.tail.value, nil
}

// Prepend inserts v before the current head.
func (l *LinkedList[T]) Prepend(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// Append inserts v after the current tail.
func (l *LinkedList[T]) Append(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// IndexOf returns the zero-based position of the first element equal to v,
// or NotFound.
func (l *LinkedList[T]) IndexOf(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return NotFound
}

// Contains reports whether any element equals v.
func (l *LinkedList[T]) Contains(v T) bool {
	return l.IndexOf(v) != NotFound
}

// Remove removes and returns the element at index. Out of range indices are
// clamped: anything below zero removes the head and anything past the end
// removes the tail.
func (l *LinkedList[T]) Remove(index int) (T, error) {
	if l.size == 0 {
		var zero T
		return zero, errors.WithMessagef(ErrUnderflow, "remove %d", index)
	}
	n := l.nodeAt(l.clamp(index))
	l.unlink(n)
	return n.value, nil
}

// Delete removes the first element equal to v and reports whether one was
// found.
func (l *LinkedList[T]) Delete(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(n)
			return true
		}
	}
	return false
}

func (l *LinkedList[T]) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index >= l.size-1 {
		return l.size - 1
	}
	return index
}

// nodeAt walks from whichever end is closer. index must be in [0, size).
func (l *LinkedList[T]) nodeAt(index int) *node[T] {
	if index < l.size/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (l *LinkedList[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next = nil
	n.prev = nil
	l.size--
}

// Clone returns a deep copy of the list.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	c := New[T]()
	c.copyFrom(l)
	return c
}

// Assign replaces the contents of l with a deep copy of src.
func (l *LinkedList[T]) Assign(src *LinkedList[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.copyFrom(src)
}

func (l *LinkedList[T]) copyFrom(src *LinkedList[T]) {
	if src == nil {
		return
	}
	for n := src.head; n != nil; n = n.next {
		l.Append(n.value)
	}
}

// Equal reports whether both lists hold equal values in the same order.
// A nil list equals any empty list.
func (l *LinkedList[T]) Equal(other *LinkedList[T]) bool {
	if l == nil || other == nil {
		return l.Len() == other.Len()
	}
	if l.size != other.size {
		return false
	}
	for a, b := l.head, other.head; a != nil; a, b = a.next, b.next {
		if a.value != b.value {
			return false
		}
	}
	return true
}

// Values returns all values in the linked list.
func (l *LinkedList[T]) Values() []T {
	rs := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		rs = append(rs, n.value)
	}
	return rs
}

// Range calls the function f for each element in the linked list.
func (l *LinkedList[T]) Range(f func(T)) {
	for n := l.head; n != nil; n = n.next {
		f(n.value)
	}
}

// WriteTo writes the values from head to tail separated by a single space.
// It implements io.WriterTo.
func (l *LinkedList[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for n := l.head; n != nil; n = n.next {
		format := "%v"
		if n != l.head {
			format = " %v"
		}
		c, err := fmt.Fprintf(w, format, n.value)
		total += int64(c)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (l *LinkedList[T]) String() string {
	var buf bytes.Buffer
	_, _ = l.WriteTo(&buf)
	return buf.String()
}

// Clear removes all elements from the linked list. Calling it on an empty
// list is a no-op.
func (l *LinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}
