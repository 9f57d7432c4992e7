// Copyright 2024, the pvtools contributors.

package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// A SeqSize records the length of one named sequence in a fasta file.
type SeqSize struct {
	Name   string
	Length int
}

// Sizes scans a fasta file and returns the name and length of every
// sequence, in file order.  A duplicated sequence name is an error
// since the downstream chain tools key on names.
func Sizes(fastaFile string) ([]SeqSize, error) {

	fid, err := os.Open(fastaFile)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	t := linear.NewSeq("", nil, alphabet.DNAredundant)
	r := fasta.NewReader(fid, t)

	var sizes []SeqSize
	seen := make(map[string]bool)
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		if seen[s.Name()] {
			return nil, fmt.Errorf("utils: duplicate sequence name %q in %s", s.Name(), fastaFile)
		}
		seen[s.Name()] = true
		sizes = append(sizes, SeqSize{Name: s.Name(), Length: s.Len()})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("utils: no sequences found in %s", fastaFile)
	}

	return sizes, nil
}

// WriteSizes writes a two column name/length table in the format of a
// UCSC chrom.sizes file.
func WriteSizes(w io.Writer, sizes []SeqSize) error {

	for _, s := range sizes {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Length); err != nil {
			return err
		}
	}

	return nil
}

// WriteSizesFile scans a fasta file and writes its size index to the
// named file.
func WriteSizesFile(fastaFile, outFile string) error {

	sizes, err := Sizes(fastaFile)
	if err != nil {
		return err
	}

	out, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer out.Close()

	return WriteSizes(out, sizes)
}
