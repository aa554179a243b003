//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package classify

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"git.sr.ht/~vejnar/IsoDemux/lib/dtable"
)

const reportIsoSeq1 = `id,strand,fiveseen,polyAseen,threeseen,fiveend,polyAend,threeend,primer,chimera
m54033/27919078/31_1250_CCS,+,1,1,1,31,1250,1280,3,0
m54033/27919079/31_3840_CCS,+,1,1,1,31,3840,3869,2,0
m54033/27919086/29_3644_CCS,+,1,1,1,29,3644,3674,NA,0
`

const reportIsoSeq3 = `id,strand,fivelen,threelen,polyAlen,insertlen,primer_index,primer
m54020/69664969/ccs,-,31,39,57,2627,0--7,Clontech--bc7
m54020/69664996/ccs,-,31,40,59,990,0--6,Clontech--bc6
`

func TestRead(t *testing.T) {
	c := qt.New(t)
	idx, err := Read(strings.NewReader(reportIsoSeq1), "classify.csv")
	c.Assert(err, qt.IsNil)

	c.Assert(idx.Primers(), qt.DeepEquals, []string{"2", "3"})
	c.Assert(idx.Len(), qt.Equals, 2)

	p, ok := idx.Lookup("m54033/27919078/31_1250_CCS")
	c.Assert(ok, qt.Equals, true)
	c.Assert(p, qt.Equals, "3")
	p, ok = idx.Lookup("m54033/27919079/31_3840_CCS")
	c.Assert(ok, qt.Equals, true)
	c.Assert(p, qt.Equals, "2")
}

func TestReadNAExcluded(t *testing.T) {
	c := qt.New(t)
	idx, err := Read(strings.NewReader(reportIsoSeq1), "classify.csv")
	c.Assert(err, qt.IsNil)

	_, ok := idx.Lookup("m54033/27919086/29_3644_CCS")
	c.Assert(ok, qt.Equals, false)
	c.Assert(idx.NonFL("m54033/27919086/29_3644_CCS"), qt.Equals, true)
	c.Assert(idx.NonFL("m54033/27919078/31_1250_CCS"), qt.Equals, false)
	// "NA" is not a primer
	c.Assert(idx.Primers(), qt.DeepEquals, []string{"2", "3"})
}

func TestReadPrimerIndexPreferred(t *testing.T) {
	c := qt.New(t)
	idx, err := Read(strings.NewReader(reportIsoSeq3), "classify.csv")
	c.Assert(err, qt.IsNil)

	c.Assert(idx.Primers(), qt.DeepEquals, []string{"0--6", "0--7"})
	p, ok := idx.Lookup("m54020/69664969/ccs")
	c.Assert(ok, qt.Equals, true)
	c.Assert(p, qt.Equals, "0--7")
}

func TestReadDuplicateLastWins(t *testing.T) {
	c := qt.New(t)
	report := "id,primer\nr1,2\nr1,3\n"
	idx, err := Read(strings.NewReader(report), "classify.csv")
	c.Assert(err, qt.IsNil)

	c.Assert(idx.Len(), qt.Equals, 1)
	p, ok := idx.Lookup("r1")
	c.Assert(ok, qt.Equals, true)
	c.Assert(p, qt.Equals, "3")
	// Both primers were still observed
	c.Assert(idx.Primers(), qt.DeepEquals, []string{"2", "3"})
}

func TestReadMissingPrimerColumn(t *testing.T) {
	c := qt.New(t)
	_, err := Read(strings.NewReader("id,strand\nr1,+\n"), "classify.csv")
	var ferr *dtable.FormatError
	c.Assert(err, qt.ErrorAs, &ferr)
	c.Assert(ferr.Field, qt.Equals, "primer")
}
