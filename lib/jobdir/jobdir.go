//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package jobdir locates the demultiplexing inputs inside an IsoSeq job
// directory. IsoSeq1 and IsoSeq2 jobs lay their mapped output under
// different task directories; the version is detected by probing for the
// mapped FASTQ.
package jobdir

import (
	"os"
	"path/filepath"
)

const (
	isoseq1Tasks  = "pbtranscript.tasks.post_mapping_to_genome-0"
	isoseq2Tasks  = "pbtranscript2tools.tasks.post_mapping_to_genome-0"
	classifyTasks = "pbcoretools.tasks.gather_csv-1"
)

// Paths holds the resolved input files of a job.
type Paths struct {
	MappedFastq string
	MappedGFF   string
	ReadStat    string
	Classify    string
}

// MissingFileError reports a required input file absent from the job
// directory.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return e.Path + ": file not found"
}

// Locate resolves the input files inside jobDir and returns them with the
// detected IsoSeq version ("1" or "2").
func Locate(jobDir string) (Paths, string, error) {
	abs, err := filepath.Abs(jobDir)
	if err != nil {
		return Paths{}, "", err
	}
	layouts := []struct {
		version string
		tasks   string
	}{
		{"1", isoseq1Tasks},
		{"2", isoseq2Tasks},
	}
	for _, layout := range layouts {
		taskDir := filepath.Join(abs, "tasks", layout.tasks)
		p := Paths{
			MappedFastq: filepath.Join(taskDir, "output_mapped.fastq"),
			MappedGFF:   filepath.Join(taskDir, "output_mapped.gff"),
			ReadStat:    filepath.Join(taskDir, "output_mapped.no5merge.collapsed.read_stat.txt"),
			Classify:    filepath.Join(abs, "tasks", classifyTasks, "file.csv"),
		}
		if _, err := os.Stat(p.MappedFastq); err != nil {
			continue
		}
		for _, required := range []string{p.MappedGFF, p.ReadStat, p.Classify} {
			if _, err := os.Stat(required); err != nil {
				return Paths{}, "", &MissingFileError{Path: required}
			}
		}
		return p, layout.version, nil
	}
	return Paths{}, "", &MissingFileError{Path: filepath.Join(abs, "tasks", isoseq1Tasks, "output_mapped.fastq")}
}

// Link symlinks the resolved input files into outDir under stable names and
// returns the link paths.
func Link(p Paths, outDir string) (Paths, error) {
	linked := Paths{
		MappedFastq: filepath.Join(outDir, "mapped.fastq"),
		MappedGFF:   filepath.Join(outDir, "mapped.gff"),
		ReadStat:    filepath.Join(outDir, "mapped.read_stat.txt"),
		Classify:    filepath.Join(outDir, "classify_report.csv"),
	}
	links := [][2]string{
		{p.MappedFastq, linked.MappedFastq},
		{p.MappedGFF, linked.MappedGFF},
		{p.ReadStat, linked.ReadStat},
		{p.Classify, linked.Classify},
	}
	for _, l := range links {
		// Replace links left by a previous run
		if err := os.Remove(l[1]); err != nil && !os.IsNotExist(err) {
			return Paths{}, err
		}
		if err := os.Symlink(l[0], l[1]); err != nil {
			return Paths{}, err
		}
	}
	return linked, nil
}
