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

package netindex

import (
	"context"
	"sync"

	"github.com/dbindex/bplustree/internal/bplustree"
)

// Server is an IndexServer backed by a single int64-keyed B+ tree. It
// serialises every RPC against the tree, since Tree write operations are
// not safe for concurrent use.
type Server struct {
	mu   sync.Mutex
	tree *bplustree.Tree[int64]
}

// NewServer creates a Server with a fresh, empty tree of the given order.
func NewServer(order int) *Server {
	return &Server{tree: bplustree.NewOrdered[int64](order)}
}

func (s *Server) Insert(_ context.Context, req *InsertRequest) (*InsertResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, inserted := s.tree.Insert(req.Key)
	return &InsertResponse{Inserted: inserted}, nil
}

func (s *Server) Erase(_ context.Context, req *EraseRequest) (*EraseResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.tree.Find(req.Key)
	if !it.Valid() {
		return &EraseResponse{Erased: false}, nil
	}
	s.tree.Erase(it)
	return &EraseResponse{Erased: true}, nil
}

func (s *Server) Find(_ context.Context, req *FindRequest) (*FindResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &FindResponse{Found: s.tree.Find(req.Key).Valid()}, nil
}

func (s *Server) Dump(_ context.Context, _ *DumpRequest) (*DumpResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &DumpResponse{Text: s.tree.Dump()}, nil
}
