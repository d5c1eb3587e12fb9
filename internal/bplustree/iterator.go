// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bplustree

// Iterator is a read-only handle into a Tree: a (tree, node, position)
// triple. The zero value, and the value returned by End, denote the
// position one past the largest key.
type Iterator[T any] struct {
	tree *Tree[T]
	node *node[T]
	pos  int
}

// Valid reports whether it references a stored key, as opposed to End().
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Key returns the key referenced by it. It panics if it is End().
func (it Iterator[T]) Key() T {
	if it.node == nil {
		panic("bplustree: dereference of end iterator")
	}
	return it.node.records[it.pos].key
}

// Next returns a handle to the next key in ascending order, or End() if it
// is already the last key or End().
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		return it
	}
	n, pos := it.node, it.pos+1
	if pos >= len(n.records) {
		n, pos = n.next, 0
	}
	if n == it.tree.header {
		return it.tree.End()
	}
	return Iterator[T]{tree: it.tree, node: n, pos: pos}
}

// Prev returns a handle to the previous key in ascending order. From End()
// it returns the largest key, or End() itself if the tree is empty. From
// the smallest key it is a no-op.
func (it Iterator[T]) Prev() Iterator[T] {
	t := it.tree
	if it.node == nil {
		last := t.header.prev
		if last == t.header {
			return it
		}
		return Iterator[T]{tree: t, node: last, pos: len(last.records) - 1}
	}
	if it.pos == 0 {
		prev := it.node.prev
		if prev == t.header {
			return it
		}
		return Iterator[T]{tree: t, node: prev, pos: len(prev.records) - 1}
	}
	return Iterator[T]{tree: t, node: it.node, pos: it.pos - 1}
}

// Equal reports whether it and other reference the same position. Two end
// iterators from the same tree are always equal regardless of how they were
// produced; positions are otherwise compared field by field.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if (it.node == nil) != (other.node == nil) {
		return false
	}
	if it.node == nil {
		return it.tree == other.tree
	}
	return it.tree == other.tree && it.node == other.node && it.pos == other.pos
}
