// Copyright 2024, the pvtools contributors.

// pvlookup builds the per-base liftover lookup table for a gene.  It
// takes the RefSeqGene fasta with its JSON metadata (exon and CDS
// structure) and the matching GRCh37 and GRCh38 region fastas with
// their metadata (genomic start and end), and writes a tab-delimited
// table with one row per gene base:
//
// Start_Position  ATG_Position  Transcript_Position  GRCh37_Position
// GRCh38_Position  Allele  Exon_Annotation  CDS_Annotation
//
// pvlookup --out=NG_008376.tsv \
//     --ng=NG_008376.fa --ngMeta=NG_008376.json \
//     --g7=grch37.fa --g7Meta=grch37.json \
//     --g8=grch38.fa --g8Meta=grch38.json
//
// An --out name ending in .sz is snappy compressed.

package main

import (
	"flag"
	"log"
	"os"

	"github.com/sadams2013/pvtools/liftover"
)

var (
	ngFile = flag.String("ng", "", "RefSeqGene fasta file")
	ngMeta = flag.String("ngMeta", "", "RefSeqGene metadata (JSON)")
	g7File = flag.String("g7", "", "GRCh37 region fasta file")
	g7Meta = flag.String("g7Meta", "", "GRCh37 region metadata (JSON)")
	g8File = flag.String("g8", "", "GRCh38 region fasta file")
	g8Meta = flag.String("g8Meta", "", "GRCh38 region metadata (JSON)")
	out    = flag.String("out", "", "output file; - or empty writes to stdout")
)

func main() {

	flag.Parse()

	for _, f := range []string{*ngFile, *ngMeta, *g7File, *g7Meta, *g8File, *g8Meta} {
		if f == "" {
			flag.Usage()
			os.Exit(1)
		}
	}

	ng, err := liftover.ReadSequence(*ngFile, *ngMeta)
	if err != nil {
		log.Fatal(err)
	}
	g7, err := liftover.ReadSequence(*g7File, *g7Meta)
	if err != nil {
		log.Fatal(err)
	}
	g8, err := liftover.ReadSequence(*g8File, *g8Meta)
	if err != nil {
		log.Fatal(err)
	}

	table, err := liftover.NewTable(ng, g7, g8)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" || *out == "-" {
		if err := table.WriteTSV(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := table.WriteFile(*out); err != nil {
		log.Fatal(err)
	}
}
