// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bintree/bintree"
	"github.com/bitmark-inc/bintree/fault"
)

// convert the text of a key
type keyParser[K cmp.Ordered] func(s string) (K, error)

func parseString(s string) (string, error) {
	return s, nil
}

func parseInteger(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidInputLine
	}
	return n, nil
}

// read "key value" lines into a new tree
//
// the key ends at the first space or tab and the rest of the line,
// trimmed, is the value.  Blank lines and lines starting with "#" are
// skipped.  A repeated key keeps its first value and is reported on e.
func load[K cmp.Ordered](r io.Reader, parse keyParser[K], e io.Writer) (*session[K], error) {

	s := &session[K]{
		tree:  bintree.New[K, string](),
		parse: parse,
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1

		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		n := strings.IndexAny(line, " \t")
		if n < 0 {
			return nil, fmt.Errorf("line: %d  error: %w", lineNumber, fault.ErrInvalidInputLine)
		}

		key, err := parse(line[:n])
		if nil != err {
			return nil, fmt.Errorf("line: %d  error: %w", lineNumber, err)
		}
		value := strings.TrimSpace(line[n+1:])

		if _, added := s.tree.Insert(key, value); !added {
			s.duplicates += 1
			fmt.Fprintf(e, "line: %d  key: %v  error: %s\n", lineNumber, key, fault.ErrDuplicateKey)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return s, nil
}
