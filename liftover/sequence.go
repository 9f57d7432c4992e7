// Copyright 2024, the pvtools contributors.

// Package liftover builds per-base coordinate lookup tables for a
// gene, mapping RefSeqGene positions to transcript (HGVS-style c.)
// positions and to genomic positions on two reference assemblies.
//
// All coordinates in this package are 1-based and inclusive, matching
// the RefSeqGene metadata convention.
package liftover

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var errNoMetadata = errors.New("liftover: sequence has no metadata")

// Metadata holds the JSON sidecar for a sequence.  For a RefSeqGene
// the exon and CDS fields are populated; for an assembly region only
// Start and End are needed.
type Metadata struct {
	ExonCount  int
	ExonStarts []int
	ExonEnds   []int
	CDSStarts  []int
	CDSEnds    []int
	Start      int
	End        int
}

// A Sequence is one fasta record with optional metadata.
type Sequence struct {
	Name string
	Seq  string
	Meta *Metadata
}

// ReadSequence reads the first record of a fasta file and, if
// jsonFile is not empty, its metadata sidecar.
func ReadSequence(fastaFile, jsonFile string) (*Sequence, error) {

	fid, err := os.Open(fastaFile)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	t := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(fid, t))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("liftover: no sequences found in %s", fastaFile)
	}
	s := sc.Seq().(*linear.Seq)

	name := s.Name()
	if s.Desc != "" {
		name += " " + s.Desc
	}
	sq := &Sequence{Name: name, Seq: s.Seq.String()}

	if jsonFile == "" {
		return sq, nil
	}

	mid, err := os.Open(jsonFile)
	if err != nil {
		return nil, err
	}
	defer mid.Close()

	meta := new(Metadata)
	dec := json.NewDecoder(mid)
	if err := dec.Decode(meta); err != nil {
		return nil, err
	}
	if err := meta.check(); err != nil {
		return nil, fmt.Errorf("%v (%s)", err, jsonFile)
	}
	sq.Meta = meta

	return sq, nil
}

func (m *Metadata) check() error {
	if len(m.ExonStarts) != len(m.ExonEnds) {
		return fmt.Errorf("liftover: %d exon starts but %d exon ends", len(m.ExonStarts), len(m.ExonEnds))
	}
	if m.ExonCount != 0 && m.ExonCount != len(m.ExonStarts) {
		return fmt.Errorf("liftover: ExonCount is %d but %d exons are listed", m.ExonCount, len(m.ExonStarts))
	}
	if len(m.CDSStarts) != len(m.CDSEnds) {
		return fmt.Errorf("liftover: %d CDS starts but %d CDS ends", len(m.CDSStarts), len(m.CDSEnds))
	}
	return nil
}

// Len returns the sequence length in bases.
func (s *Sequence) Len() int { return len(s.Seq) }

// Transcribe splices the exons together, returning the mRNA sequence.
func (s *Sequence) Transcribe() (string, error) {

	if s.Meta == nil || len(s.Meta.ExonStarts) == 0 {
		return "", errNoMetadata
	}

	var rna []byte
	for i := range s.Meta.ExonStarts {
		start := s.Meta.ExonStarts[i]
		end := s.Meta.ExonEnds[i]
		if start < 1 || end > len(s.Seq) || end < start {
			return "", fmt.Errorf("liftover: exon %d [%d, %d] outside sequence of length %d", i+1, start, end, len(s.Seq))
		}
		rna = append(rna, s.Seq[start-1:end]...)
	}

	return string(rna), nil
}
