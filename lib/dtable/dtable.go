//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package dtable reads delimited tables with a header row, giving access to
// row fields by column name.
package dtable

import (
	"encoding/csv"
	"fmt"
	"io"
)

// FormatError reports a required column missing from a table header.
type FormatError struct {
	Path  string
	Field string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Path, e.Field)
}

// Reader iterates over the rows of a delimited table. The header row is
// consumed by NewReader; each subsequent row is fetched with Next and its
// fields read with Field.
type Reader struct {
	path string
	cr   *csv.Reader
	cols map[string]int
	row  []string
	err  error
}

// NewReader reads the header row of the table at path from r. comma is the
// field delimiter (',' or '\t').
func NewReader(r io.Reader, comma rune, path string) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return &Reader{path: path, cr: cr, cols: cols}, nil
}

// HasColumn reports whether the header declares the named column.
func (r *Reader) HasColumn(name string) bool {
	_, ok := r.cols[name]
	return ok
}

// Require returns a FormatError for the first named column absent from the
// header.
func (r *Reader) Require(names ...string) error {
	for _, name := range names {
		if !r.HasColumn(name) {
			return &FormatError{Path: r.path, Field: name}
		}
	}
	return nil
}

// Next advances to the next row. It returns false at the end of the table or
// on error; Err tells the two apart.
func (r *Reader) Next() bool {
	row, err := r.cr.Read()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}
	r.row = row
	return true
}

// Field returns the named field of the current row, or "" if the column is
// not declared. The value is only valid until the next call to Next.
func (r *Reader) Field(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.row) {
		return ""
	}
	return r.row[i]
}

func (r *Reader) Err() error {
	return r.err
}
