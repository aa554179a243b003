//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package classify indexes the classify report: the set of primers observed
// in the run and the primer each full-length read was assigned to.
package classify

import (
	"io"
	"sort"

	"gopkg.in/fatih/set.v0"

	"git.sr.ht/~vejnar/IsoDemux/lib/dtable"
)

// Index maps full-length read IDs to their primer. Reads classified "NA"
// (non full-length) are excluded from the lookup and the primer set, but
// remembered so they can be told apart from reads missing from the report.
type Index struct {
	primers set.Interface
	lookup  map[string]string
	nonFL   set.Interface
}

// Read parses the comma-delimited classify report from r. The header must
// declare "id" and "primer"; when a "primer_index" column is also present
// (IsoSeq3 reports) its value is used as the primer token instead of
// "primer". Duplicated read IDs keep the last row.
func Read(r io.Reader, path string) (*Index, error) {
	dr, err := dtable.NewReader(r, ',', path)
	if err != nil {
		return nil, err
	}
	if err := dr.Require("id", "primer"); err != nil {
		return nil, err
	}
	hasIndex := dr.HasColumn("primer_index")
	idx := &Index{
		primers: set.New(set.NonThreadSafe),
		lookup:  make(map[string]string),
		nonFL:   set.New(set.NonThreadSafe),
	}
	for dr.Next() {
		p := dr.Field("primer")
		// Skip nFL
		if p == "NA" {
			idx.nonFL.Add(dr.Field("id"))
			continue
		}
		if hasIndex {
			p = dr.Field("primer_index")
		}
		idx.primers.Add(p)
		idx.lookup[dr.Field("id")] = p
	}
	if err := dr.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Lookup returns the primer of the read with the given ID.
func (x *Index) Lookup(id string) (string, bool) {
	p, ok := x.lookup[id]
	return p, ok
}

// NonFL reports whether the read with the given ID was classified "NA".
func (x *Index) NonFL(id string) bool {
	return x.nonFL.Has(id)
}

// Primers returns the observed primers sorted lexicographically.
func (x *Index) Primers() []string {
	primers := set.StringSlice(x.primers)
	sort.Strings(primers)
	return primers
}

// Len returns the number of indexed reads.
func (x *Index) Len() int {
	return len(x.lookup)
}
