//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package isoform

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// FromSAM returns the isoform IDs of the SAM records read from r.
func FromSAM(r io.Reader) ([]string, error) {
	rr, err := sam.NewReader(r)
	if err != nil {
		return nil, err
	}
	return fromRecords(rr)
}

// FromBAM returns the isoform IDs of the records of the BAM file at path.
func FromBAM(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rr, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, err
	}
	defer rr.Close()
	return fromRecords(rr)
}

func fromRecords(rr sam.RecordReader) ([]string, error) {
	l := newIDList()
	for {
		r, err := rr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		l.add(r.Name)
	}
	return l.ids, nil
}
