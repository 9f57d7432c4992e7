// Copyright 2024, the pvtools contributors.

package liftover

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// A Row is one base of the lookup table.
type Row struct {
	StartPosition      int
	ATGPosition        int
	TranscriptPosition string
	GRCh37Position     int
	GRCh38Position     int
	Allele             string
	ExonAnnotation     string
	CDSAnnotation      string
}

// A Table maps every base of a RefSeqGene to its transcript position
// and to its genomic position on GRCh37 and GRCh38.
type Table struct {
	Rows []Row
}

var tableHeader = strings.Join([]string{
	"Start_Position",
	"ATG_Position",
	"Transcript_Position",
	"GRCh37_Position",
	"GRCh38_Position",
	"Allele",
	"Exon_Annotation",
	"CDS_Annotation",
}, "\t")

// NewTable builds the lookup table for a gene.  ng is the RefSeqGene
// with full exon/CDS metadata; g7 and g8 carry the Start/End of the
// corresponding GRCh37 and GRCh38 regions, which must span exactly as
// many bases as the gene sequence.
func NewTable(ng, g7, g8 *Sequence) (*Table, error) {

	if ng.Meta == nil {
		return nil, errNoMetadata
	}
	for _, v := range []struct {
		name string
		seq  *Sequence
	}{{"GRCh37", g7}, {"GRCh38", g8}} {
		if v.seq.Meta == nil {
			return nil, fmt.Errorf("liftover: %s sequence has no metadata", v.name)
		}
		if n := v.seq.Meta.End - v.seq.Meta.Start + 1; n != ng.Len() {
			return nil, fmt.Errorf("liftover: %s region spans %d bases but the gene has %d", v.name, n, ng.Len())
		}
	}

	tpos, err := ng.Liftover()
	if err != nil {
		return nil, err
	}
	exonAnn, err := ng.Annotate(false)
	if err != nil {
		return nil, err
	}
	cdsAnn, err := ng.Annotate(true)
	if err != nil {
		return nil, err
	}
	if len(exonAnn) != ng.Len() || len(cdsAnn) != ng.Len() {
		return nil, fmt.Errorf("liftover: annotation covers %d/%d of %d bases", len(exonAnn), len(cdsAnn), ng.Len())
	}

	atg := ng.ATGPos()
	t := &Table{Rows: make([]Row, ng.Len())}
	for i := range t.Rows {
		t.Rows[i] = Row{
			StartPosition:      i + 1,
			ATGPosition:        i + 1 - atg,
			TranscriptPosition: tpos[i],
			GRCh37Position:     g7.Meta.Start + i,
			GRCh38Position:     g8.Meta.Start + i,
			Allele:             ng.Seq[i : i+1],
			ExonAnnotation:     exonAnn[i],
			CDSAnnotation:      cdsAnn[i],
		}
	}

	return t, nil
}

// WriteTSV writes the table with a header line.
func (t *Table) WriteTSV(w io.Writer) error {

	if _, err := fmt.Fprintln(w, tableHeader); err != nil {
		return err
	}
	for _, r := range t.Rows {
		_, err := fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
			r.StartPosition, r.ATGPosition, r.TranscriptPosition,
			r.GRCh37Position, r.GRCh38Position, r.Allele,
			r.ExonAnnotation, r.CDSAnnotation)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes the table to the named file.  A name ending in
// .sz is snappy compressed, as with the other pvtools outputs.
func (t *Table) WriteFile(filename string) error {

	fid, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fid.Close()

	if strings.HasSuffix(filename, ".sz") {
		wtr := snappy.NewBufferedWriter(fid)
		if err := t.WriteTSV(wtr); err != nil {
			return err
		}
		return wtr.Close()
	}

	wtr := bufio.NewWriter(fid)
	if err := t.WriteTSV(wtr); err != nil {
		return err
	}
	return wtr.Flush()
}
