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

// Package bplustree implements an in-memory ordered index backed by a B+
// tree of fixed branching factor. Internal nodes route on the maximum key
// of their subtree rather than a classical separator, and leaves are joined
// into a doubly linked chain to support bidirectional iteration.
package bplustree

import "golang.org/x/exp/constraints"

// LessFunc reports whether a sorts strictly before b under the tree's total
// order. It must be a strict weak ordering: irreflexive and transitive.
type LessFunc[T any] func(a, b T) bool

// Ordered returns the natural ascending order for any key type that
// satisfies constraints.Ordered, for use with New when no custom
// comparator is required.
func Ordered[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}
