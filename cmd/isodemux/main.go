//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"git.sr.ht/~vejnar/IsoDemux/lib/jobdir"
	"git.sr.ht/~vejnar/IsoDemux/lib/matrix"
)

var version = "DEV"

func main() {
	// Arguments: General
	var countPath string
	var verboseLevel int
	var verbose, printVersion bool
	flag.StringVar(&countPath, "count_path", "", "Path to counts output (stdout with -)")
	flag.IntVar(&verboseLevel, "verbose_level", 0, "Verbose level")
	flag.BoolVar(&verbose, "verbose", false, "Verbose")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	// Arguments: Input
	var pathJob, pathFastq, pathSAM, pathBAM, pathReadStat, pathClassify, pathPrimerNames string
	flag.StringVar(&pathJob, "path_job", "", "Path to IsoSeq job directory (resolves the input paths, overriding them)")
	flag.StringVar(&pathFastq, "path_fastq", "", "Path to mapped FASTQ file")
	flag.StringVar(&pathSAM, "path_sam", "", "Path to mapped SAM file")
	flag.StringVar(&pathBAM, "path_bam", "", "Path to mapped BAM file")
	flag.StringVar(&pathReadStat, "path_read_stat", "", "Path to collapsed read_stat file")
	flag.StringVar(&pathClassify, "path_classify", "", "Path to classify report CSV")
	flag.StringVar(&pathPrimerNames, "path_primer_names", "", "Path to primer sample name file (two columns: primer, name)")
	// Arguments: Parse
	flag.Parse()

	// Version
	if printVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Verbose
	if verbose && verboseLevel == 0 {
		verboseLevel = 1
	}

	// Time start
	var timeStart time.Time
	if verboseLevel > 0 {
		timeStart = time.Now()
	}

	// Resolve inputs from the job directory
	if len(pathJob) > 0 {
		paths, isoseqVersion, err := jobdir.Locate(pathJob)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(os.Stderr, "Detected IsoSeq%s task directories\n", isoseqVersion)
		linked, err := jobdir.Link(paths, ".")
		if err != nil {
			log.Fatal(err)
		}
		pathFastq = linked.MappedFastq
		pathReadStat = linked.ReadStat
		pathClassify = linked.Classify
		pathSAM = ""
		pathBAM = ""
	}

	// Check arguments
	var nMapped int
	for _, p := range []string{pathFastq, pathSAM, pathBAM} {
		if len(p) > 0 {
			nMapped++
		}
	}
	if nMapped == 0 {
		log.Fatal("No mapped-read input (see path_fastq, path_sam or path_bam option)")
	} else if nMapped > 1 {
		log.Fatal("Only one mapped-read input allowed")
	}
	if len(pathClassify) == 0 {
		log.Fatal("No classify report input")
	}
	if len(pathReadStat) == 0 {
		log.Fatal("No read_stat input")
	}
	if len(countPath) == 0 {
		log.Fatal("No counts output (see count_path option)")
	}
	for _, p := range []string{pathFastq, pathSAM, pathBAM, pathClassify, pathReadStat, pathPrimerNames} {
		if len(p) == 0 {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			log.Fatalln(p, "not found")
		}
	}

	// Open primer names
	var names *matrix.Names
	if len(pathPrimerNames) > 0 {
		var err error
		names, err = matrix.OpenNames(pathPrimerNames)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Demultiplex FL counts on isoforms
	err := Demux(pathClassify, pathReadStat, pathFastq, pathSAM, pathBAM, names, countPath, timeStart, verboseLevel)
	if err != nil {
		log.Fatal(err)
	}

	if countPath != "-" {
		fmt.Fprintf(os.Stderr, "Count file written to %s\n", countPath)
	}

	// Verbose
	if verboseLevel > 0 {
		timeEnd := time.Now()
		fmt.Fprintf(os.Stderr, "%.1fmin - Done\n", timeEnd.Sub(timeStart).Minutes())
	}
}
