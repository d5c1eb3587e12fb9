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

// Package main implements an interactive console driver over an
// int64-keyed B+ tree index: it reads a count and that many keys to
// insert, dumping the tree's structure after each new key, then reads a
// count and that many keys to erase, dumping after each one actually
// removed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/dbindex/bplustree/internal/bplustree"
)

func main() {
	order := flag.Int("order", 3, "the B+ tree's branching factor")
	flag.Parse()

	glog.Infof("bplustree: starting console driver with order=%d", *order)
	if err := run(*order, os.Stdin, os.Stdout); err != nil {
		glog.Fatalf("bplustree: %v", err)
	}
}

func run(order int, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	next := func() (int64, error) {
		if !scanner.Scan() {
			return 0, fmt.Errorf("unexpected end of input")
		}
		var v int64
		if _, err := fmt.Sscan(scanner.Text(), &v); err != nil {
			return 0, err
		}
		return v, nil
	}

	tree := bplustree.NewOrdered[int64](order)

	fmt.Fprint(out, "How many elements do you want to insert: ")
	n, err := next()
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		key, err := next()
		if err != nil {
			return err
		}
		if _, inserted := tree.Insert(key); !inserted {
			fmt.Fprintf(out, "Key %d exists\n", key)
		} else {
			fmt.Fprintf(out, "After insert %d:\n", key)
			fmt.Fprint(out, tree.Dump())
		}
		fmt.Fprintln(out)
	}

	for it := tree.Begin(); it.Valid(); it = it.Next() {
		fmt.Fprintf(out, "%d ", it.Key())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	fmt.Fprint(out, "How many elements do you want to erase: ")
	n, err = next()
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		key, err := next()
		if err != nil {
			return err
		}
		it := tree.Find(key)
		if it.Valid() {
			tree.Erase(it)
			fmt.Fprintf(out, "After erase %d\n", key)
			fmt.Fprint(out, tree.Dump())
			fmt.Fprintln(out)
		} else {
			fmt.Fprintf(out, "Key %d doesn't exist\n\n", key)
		}
	}

	return nil
}
