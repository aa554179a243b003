//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package jobdir

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func writeJob(c *qt.C, jobDir, tasks string, files []string) {
	taskDir := filepath.Join(jobDir, "tasks", tasks)
	c.Assert(os.MkdirAll(taskDir, 0777), qt.IsNil)
	classifyDir := filepath.Join(jobDir, "tasks", classifyTasks)
	c.Assert(os.MkdirAll(classifyDir, 0777), qt.IsNil)
	for _, name := range files {
		c.Assert(os.WriteFile(filepath.Join(taskDir, name), nil, 0666), qt.IsNil)
	}
	c.Assert(os.WriteFile(filepath.Join(classifyDir, "file.csv"), nil, 0666), qt.IsNil)
}

var jobFiles = []string{
	"output_mapped.fastq",
	"output_mapped.gff",
	"output_mapped.no5merge.collapsed.read_stat.txt",
}

func TestLocateIsoSeq1(t *testing.T) {
	c := qt.New(t)
	jobDir := t.TempDir()
	writeJob(c, jobDir, isoseq1Tasks, jobFiles)

	p, version, err := Locate(jobDir)
	c.Assert(err, qt.IsNil)
	c.Assert(version, qt.Equals, "1")
	c.Assert(filepath.Base(p.MappedFastq), qt.Equals, "output_mapped.fastq")
	c.Assert(p.Classify, qt.Equals, filepath.Join(jobDir, "tasks", classifyTasks, "file.csv"))
}

func TestLocateIsoSeq2(t *testing.T) {
	c := qt.New(t)
	jobDir := t.TempDir()
	writeJob(c, jobDir, isoseq2Tasks, jobFiles)

	_, version, err := Locate(jobDir)
	c.Assert(err, qt.IsNil)
	c.Assert(version, qt.Equals, "2")
}

func TestLocateMissingJob(t *testing.T) {
	c := qt.New(t)
	_, _, err := Locate(t.TempDir())
	var merr *MissingFileError
	c.Assert(err, qt.ErrorAs, &merr)
	c.Assert(filepath.Base(merr.Path), qt.Equals, "output_mapped.fastq")
}

func TestLocateIncompleteJob(t *testing.T) {
	c := qt.New(t)
	jobDir := t.TempDir()
	// mapped FASTQ present, read_stat missing
	writeJob(c, jobDir, isoseq1Tasks, []string{"output_mapped.fastq", "output_mapped.gff"})

	_, _, err := Locate(jobDir)
	var merr *MissingFileError
	c.Assert(err, qt.ErrorAs, &merr)
	c.Assert(filepath.Base(merr.Path), qt.Equals, "output_mapped.no5merge.collapsed.read_stat.txt")
}

func TestLinkRerun(t *testing.T) {
	c := qt.New(t)
	jobDir := t.TempDir()
	writeJob(c, jobDir, isoseq1Tasks, jobFiles)

	p, _, err := Locate(jobDir)
	c.Assert(err, qt.IsNil)

	// Links left by a previous run are replaced
	outDir := t.TempDir()
	_, err = Link(p, outDir)
	c.Assert(err, qt.IsNil)
	linked, err := Link(p, outDir)
	c.Assert(err, qt.IsNil)

	target, err := os.Readlink(linked.MappedFastq)
	c.Assert(err, qt.IsNil)
	c.Assert(target, qt.Equals, p.MappedFastq)
}

func TestLink(t *testing.T) {
	c := qt.New(t)
	jobDir := t.TempDir()
	writeJob(c, jobDir, isoseq2Tasks, jobFiles)

	p, _, err := Locate(jobDir)
	c.Assert(err, qt.IsNil)

	outDir := t.TempDir()
	linked, err := Link(p, outDir)
	c.Assert(err, qt.IsNil)
	c.Assert(linked.MappedFastq, qt.Equals, filepath.Join(outDir, "mapped.fastq"))

	for _, l := range []string{linked.MappedFastq, linked.MappedGFF, linked.ReadStat, linked.Classify} {
		target, err := os.Readlink(l)
		c.Assert(err, qt.IsNil)
		_, err = os.Stat(target)
		c.Assert(err, qt.IsNil)
	}
}
