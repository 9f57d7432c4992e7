// Copyright 2024, the pvtools contributors.

// pvregions prints the region table of a gene as Name/Start/End
// rows, sorted by start position.  The default table is the exon
// level structure (exons, introns, Upstream, Downstream); with --cds
// the coding level structure is printed instead (CDS segments,
// coding introns, UTR exons and introns).

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sadams2013/pvtools/liftover"
)

var (
	fastaFile = flag.String("fasta", "", "gene fasta file")
	metaFile  = flag.String("meta", "", "gene metadata (JSON)")
	cds       = flag.Bool("cds", false, "print the coding level table")
)

func main() {

	flag.Parse()

	if *fastaFile == "" || *metaFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	s, err := liftover.ReadSequence(*fastaFile, *metaFile)
	if err != nil {
		log.Fatal(err)
	}

	var rr []liftover.Region
	if *cds {
		rr, err = s.CDSRegions()
	} else {
		rr, err = s.ExonRegions()
	}
	if err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	fmt.Fprintln(w, "Name\tStart\tEnd")
	for _, r := range rr {
		fmt.Fprintf(w, "%s\t%d\t%d\n", r.Name, r.Start, r.End)
	}
}
