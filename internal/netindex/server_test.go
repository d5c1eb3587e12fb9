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
	"testing"
)

func TestServerInsertFindErase(t *testing.T) {
	s := NewServer(3)
	ctx := context.Background()

	resp, err := s.Insert(ctx, &InsertRequest{Key: 42})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !resp.Inserted {
		t.Fatalf("first insert of 42 reported not inserted")
	}

	resp, err = s.Insert(ctx, &InsertRequest{Key: 42})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if resp.Inserted {
		t.Fatalf("re-insert of 42 reported inserted")
	}

	found, err := s.Find(ctx, &FindRequest{Key: 42})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !found.Found {
		t.Fatalf("Find(42) reported not found")
	}

	erased, err := s.Erase(ctx, &EraseRequest{Key: 42})
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if !erased.Erased {
		t.Fatalf("Erase(42) reported not erased")
	}

	erased, err = s.Erase(ctx, &EraseRequest{Key: 42})
	if err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if erased.Erased {
		t.Fatalf("Erase of an absent key reported erased")
	}
}

func TestServerDump(t *testing.T) {
	s := NewServer(3)
	ctx := context.Background()
	for _, k := range []int64{1, 2, 3, 4, 5} {
		if _, err := s.Insert(ctx, &InsertRequest{Key: k}); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}
	dump, err := s.Dump(ctx, &DumpRequest{})
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if dump.Text == "" {
		t.Fatalf("Dump returned empty text for a non-empty tree")
	}
}
