//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package flcount folds the read_stat table into per-isoform per-primer
// full-length read counts.
package flcount

import (
	"fmt"
	"io"

	"git.sr.ht/~vejnar/IsoDemux/lib/classify"
	"git.sr.ht/~vejnar/IsoDemux/lib/dtable"
)

// Counts maps isoform ID to primer to FL read count. Absent pairs count as
// zero.
type Counts map[string]map[string]int

// Add increments the count of the (isoform, primer) pair.
func (c Counts) Add(pbid, primer string) {
	m := c[pbid]
	if m == nil {
		m = make(map[string]int)
		c[pbid] = m
	}
	m[primer]++
}

// Get returns the count of the (isoform, primer) pair, zero if absent.
func (c Counts) Get(pbid, primer string) int {
	return c[pbid][primer]
}

// MissingReadError reports a full-length read from the read_stat table with
// no entry in the classify report, i.e. input files from mismatched pipeline
// runs.
type MissingReadError struct {
	ReadID string
}

func (e *MissingReadError) Error() string {
	return fmt.Sprintf("read %q is full-length in read_stat but missing from the classify report", e.ReadID)
}

// Aggregate parses the tab-delimited read_stat table from r and counts, for
// every row flagged full-length ("Y"), one read for the row's isoform and
// the primer the classify index assigned to the read.
func Aggregate(r io.Reader, path string, idx *classify.Index) (Counts, error) {
	dr, err := dtable.NewReader(r, '\t', path)
	if err != nil {
		return nil, err
	}
	if err := dr.Require("id", "is_fl", "pbid"); err != nil {
		return nil, err
	}
	counts := make(Counts)
	for dr.Next() {
		if dr.Field("is_fl") != "Y" {
			continue
		}
		id := dr.Field("id")
		p, ok := idx.Lookup(id)
		if !ok {
			// A read the classify report marked "NA" is known non-FL:
			// its FL flag here is stale, not a file mismatch.
			if idx.NonFL(id) {
				continue
			}
			return nil, &MissingReadError{ReadID: id}
		}
		counts.Add(dr.Field("pbid"), p)
	}
	if err := dr.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
