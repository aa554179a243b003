//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package matrix writes the per-isoform per-primer FL count matrix as CSV.
package matrix

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"git.sr.ht/~vejnar/IsoDemux/lib/flcount"
)

// Write writes the count matrix to w: a header with the primer display
// labels, then one row per isoform in the given order with one count per
// column, zero for unobserved pairs.
func Write(w io.Writer, isoforms []string, counts flcount.Counts, names *Names) error {
	bw := bufio.NewWriter(w)
	// Write header
	bw.WriteString("id")
	for _, p := range names.Primers() {
		bw.WriteByte(',')
		bw.WriteString(names.Label(p))
	}
	bw.WriteByte('\n')
	// Write counts
	for _, pbid := range isoforms {
		bw.WriteString(pbid)
		for _, p := range names.Primers() {
			bw.WriteByte(',')
			bw.WriteString(strconv.Itoa(counts.Get(pbid, p)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes the count matrix to countPath (stdout with "-").
func WriteFile(countPath string, isoforms []string, counts flcount.Counts, names *Names) error {
	if countPath == "-" {
		return Write(os.Stdout, isoforms, counts, names)
	}
	f, err := os.OpenFile(countPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	if err := Write(f, isoforms, counts, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
