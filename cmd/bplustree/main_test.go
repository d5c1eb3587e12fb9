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

package main

import (
	"strings"
	"testing"
)

func TestRunInsertErase(t *testing.T) {
	in := strings.NewReader("5\n1 2 3 4 5\n2\n3 10\n")
	var out strings.Builder

	if err := run(3, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "After insert 5:") {
		t.Fatalf("expected an insert confirmation for 5, got:\n%s", got)
	}
	if !strings.Contains(got, "After erase 3") {
		t.Fatalf("expected an erase confirmation for 3, got:\n%s", got)
	}
	if !strings.Contains(got, "Key 10 doesn't exist") {
		t.Fatalf("expected a not-found message for 10, got:\n%s", got)
	}
	if !strings.Contains(got, "1 2 4 5") {
		t.Fatalf("expected the forward traversal 1 2 4 5, got:\n%s", got)
	}
}

func TestRunRejectsDuplicateInsert(t *testing.T) {
	in := strings.NewReader("2\n1 1\n0\n")
	var out strings.Builder

	if err := run(3, in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Key 1 exists") {
		t.Fatalf("expected a duplicate-key message, got:\n%s", got)
	}
}
