// Copyright 2024, the pvtools contributors.

// pvtranscribe splices the exons of a gene together and writes the
// resulting mRNA sequence as fasta.
//
// pvtranscribe --fasta=NG_008376.fa --meta=NG_008376.json > mrna.fa

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/sadams2013/pvtools/liftover"
)

var (
	fastaFile = flag.String("fasta", "", "gene fasta file")
	metaFile  = flag.String("meta", "", "gene metadata (JSON)")
	outFile   = flag.String("out", "", "output file; - or empty writes to stdout")
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

	rna, err := s.Transcribe()
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *outFile != "" && *outFile != "-" {
		if out, err = os.Create(*outFile); err != nil {
			log.Fatalf("failed to create %q: %v", *outFile, err)
		}
	}
	defer out.Close()

	id, _, _ := strings.Cut(s.Name, " ")
	sq := linear.NewSeq(id, alphabet.BytesToLetters([]byte(rna)), alphabet.DNAredundant)
	sq.Desc = "mRNA"

	w := fasta.NewWriter(out, 60)
	if _, err := w.Write(sq); err != nil {
		log.Fatalf("failed to write sequence %q: %v", id, err)
	}
}
