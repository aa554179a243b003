//
// Copyright © 2015 Charles E. Vejnar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"fmt"
	"os"
	"time"

	"git.sr.ht/~vejnar/IsoDemux/lib/classify"
	"git.sr.ht/~vejnar/IsoDemux/lib/flcount"
	"git.sr.ht/~vejnar/IsoDemux/lib/isoform"
	"git.sr.ht/~vejnar/IsoDemux/lib/matrix"
	"git.sr.ht/~vejnar/IsoDemux/lib/zio"
)

// Demux joins the classify report and the read_stat table into per-isoform
// per-primer FL counts, then writes the count matrix with one row per
// isoform of the mapped reads. Exactly one of pathFastq, pathSAM and pathBAM
// selects the mapped-read input. A nil names uses the observed primers,
// sorted, as columns; a given names defines the column order and labels,
// extended with any observed primer it omits.
func Demux(pathClassify, pathReadStat, pathFastq, pathSAM, pathBAM string, names *matrix.Names, countPath string, timeStart time.Time, verboseLevel int) error {
	// Index classify report
	if verboseLevel > 0 {
		fmt.Fprintf(os.Stderr, "%.1fmin - Reading %s\n", time.Since(timeStart).Minutes(), pathClassify)
	}
	fcl, err := zio.Open(pathClassify)
	if err != nil {
		return err
	}
	idx, err := classify.Read(fcl, pathClassify)
	fcl.Close()
	if err != nil {
		return err
	}

	// Aggregate FL counts
	if verboseLevel > 0 {
		fmt.Fprintf(os.Stderr, "%.1fmin - Reading %s\n", time.Since(timeStart).Minutes(), pathReadStat)
	}
	fst, err := zio.Open(pathReadStat)
	if err != nil {
		return err
	}
	counts, err := flcount.Aggregate(fst, pathReadStat, idx)
	fst.Close()
	if err != nil {
		return err
	}

	// Isoform row order from the mapped reads
	var pathMapped string
	switch {
	case len(pathBAM) > 0:
		pathMapped = pathBAM
	case len(pathSAM) > 0:
		pathMapped = pathSAM
	default:
		pathMapped = pathFastq
	}
	if verboseLevel > 0 {
		fmt.Fprintf(os.Stderr, "%.1fmin - Reading %s\n", time.Since(timeStart).Minutes(), pathMapped)
	}
	var isoforms []string
	if len(pathBAM) > 0 {
		isoforms, err = isoform.FromBAM(pathBAM)
	} else {
		fsq, oerr := zio.Open(pathMapped)
		if oerr != nil {
			return oerr
		}
		if len(pathSAM) > 0 {
			isoforms, err = isoform.FromSAM(fsq)
		} else {
			isoforms, err = isoform.FromFastq(fsq)
		}
		fsq.Close()
	}
	if err != nil {
		return err
	}

	// Column order and labels
	if names == nil {
		names = matrix.DefaultNames(idx.Primers())
	} else {
		names.Fill(idx.Primers())
	}

	// Write count matrix
	return matrix.WriteFile(countPath, isoforms, counts, names)
}
