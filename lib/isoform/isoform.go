//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package isoform extracts the ordered list of isoform IDs from the mapped
// reads. Record identifiers carry the isoform ID before the first '|'
// (e.g. "PB.1.1|chr1:100-200(+)|..."); IDs are kept in first-appearance
// order and deduplicated.
package isoform

import (
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"

	"gopkg.in/fatih/set.v0"
)

func trimTag(name string) string {
	if i := strings.Index(name, "|"); i >= 0 {
		return name[:i]
	}
	return name
}

type idList struct {
	seen set.Interface
	ids  []string
}

func newIDList() *idList {
	return &idList{seen: set.New(set.NonThreadSafe)}
}

func (l *idList) add(name string) {
	id := trimTag(name)
	if l.seen.Has(id) {
		return
	}
	l.seen.Add(id)
	l.ids = append(l.ids, id)
}

// FromFastq returns the isoform IDs of the FASTQ records read from r.
func FromFastq(r io.Reader) ([]string, error) {
	template := linear.NewQSeq("", alphabet.QLetters{}, alphabet.DNA, alphabet.Sanger)
	sc := seqio.NewScanner(fastq.NewReader(r, template))
	l := newIDList()
	for sc.Next() {
		l.add(sc.Seq().Name())
	}
	return l.ids, sc.Error()
}
