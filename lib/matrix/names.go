//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package matrix

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Names maps primers to display labels and fixes the column order of the
// matrix: columns appear in the order primers were first added.
type Names struct {
	order  []string
	labels map[string]string
}

func NewNames() *Names {
	return &Names{labels: make(map[string]string)}
}

// Set maps a primer to a label, appending the primer as a new column if it
// was not mapped yet.
func (n *Names) Set(primer, label string) {
	if _, ok := n.labels[primer]; !ok {
		n.order = append(n.order, primer)
	}
	n.labels[primer] = label
}

// Has reports whether the primer has a column.
func (n *Names) Has(primer string) bool {
	_, ok := n.labels[primer]
	return ok
}

// Label returns the display label of the primer, the primer itself if
// unmapped.
func (n *Names) Label(primer string) string {
	if label, ok := n.labels[primer]; ok {
		return label
	}
	return primer
}

// Primers returns the primers in column order.
func (n *Names) Primers() []string {
	return n.order
}

func (n *Names) Len() int {
	return len(n.order)
}

// Fill appends a self-labeled column for every given primer not mapped yet.
// Existing columns keep their order.
func (n *Names) Fill(primers []string) {
	for _, p := range primers {
		if !n.Has(p) {
			n.Set(p, p)
		}
	}
}

// DefaultNames returns self-labeled columns in the given order.
func DefaultNames(primers []string) *Names {
	n := NewNames()
	n.Fill(primers)
	return n
}

// OpenNames parses a primer name file: one primer and its display label per
// line, whitespace separated. Line order defines column order.
func OpenNames(npath string) (*Names, error) {
	nfos, err := os.Open(npath)
	if err != nil {
		return nil, err
	}
	defer nfos.Close()

	n := NewNames()
	tscanner := bufio.NewScanner(nfos)
	for tscanner.Scan() {
		fields := strings.Fields(tscanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: primer %q without a name", npath, fields[0])
		}
		n.Set(fields[0], fields[1])
	}
	if err := tscanner.Err(); err != nil {
		return nil, err
	}
	return n, nil
}
