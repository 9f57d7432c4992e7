// Copyright 2024, the pvtools contributors.

package liftover

import (
	"reflect"
	"testing"
)

// testGene returns a 60 bp gene with three exons, a CDS spanning the
// first two, and 10 bp of flanking sequence on each side.
//
//	1-10    upstream
//	11-20   exon 1 (CDS from 15)
//	21-30   intron 1
//	31-40   exon 2 (CDS to 35)
//	41-45   intron 2
//	46-50   exon 3
//	51-60   downstream
func testGene() *Sequence {
	return &Sequence{
		Name: "NG_000001.1",
		Seq:  "TTTTTTTTTT" + "ACGTACGTAC" + "GGGGGGGGGG" + "CCCCCAAAAA" + "TTTTT" + "GCGCG" + "ATATATATAT",
		Meta: &Metadata{
			ExonCount:  3,
			ExonStarts: []int{11, 31, 46},
			ExonEnds:   []int{20, 40, 50},
			CDSStarts:  []int{15, 31},
			CDSEnds:    []int{20, 35},
		},
	}
}

func TestExonRegions(t *testing.T) {

	rr, err := testGene().ExonRegions()
	if err != nil {
		t.Fatalf("ExonRegions: %v", err)
	}

	want := []Region{
		{"Upstream", 1, 10},
		{"Exon 1", 11, 20},
		{"Intron 1", 21, 30},
		{"Exon 2", 31, 40},
		{"Intron 2", 41, 45},
		{"Exon 3", 46, 50},
		{"Downstream", 51, 60},
	}
	if !reflect.DeepEqual(rr, want) {
		t.Errorf("got %v, want %v", rr, want)
	}
}

func TestCDSRegions(t *testing.T) {

	rr, err := testGene().CDSRegions()
	if err != nil {
		t.Fatalf("CDSRegions: %v", err)
	}

	want := []Region{
		{"Upstream", 1, 10},
		{"5' UTR Exon 1", 11, 14},
		{"CDS 1", 15, 20},
		{"Intron 1", 21, 30},
		{"CDS 2", 31, 35},
		{"3' UTR Exon 1", 36, 40},
		{"3' UTR Intron 1", 41, 45},
		{"3' UTR Exon 2", 46, 50},
		{"Downstream", 51, 60},
	}
	if !reflect.DeepEqual(rr, want) {
		t.Errorf("got %v, want %v", rr, want)
	}
}

func TestRegionsCoverSequence(t *testing.T) {

	s := testGene()
	for _, cds := range []bool{false, true} {
		ann, err := s.Annotate(cds)
		if err != nil {
			t.Fatalf("Annotate(%v): %v", cds, err)
		}
		if len(ann) != s.Len() {
			t.Errorf("Annotate(%v) covers %d bases, want %d", cds, len(ann), s.Len())
		}
	}
}

func TestAnnotate(t *testing.T) {

	s := testGene()

	exon, err := s.Annotate(false)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	for _, v := range []struct {
		pos  int
		want string
	}{
		{1, "Upstream"},
		{10, "Upstream"},
		{11, "Exon 1"},
		{25, "Intron 1"},
		{40, "Exon 2"},
		{43, "Intron 2"},
		{50, "Exon 3"},
		{51, "Downstream"},
	} {
		if got := exon[v.pos-1]; got != v.want {
			t.Errorf("exon annotation at %d: got %q, want %q", v.pos, got, v.want)
		}
	}

	cds, err := s.Annotate(true)
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	for _, v := range []struct {
		pos  int
		want string
	}{
		{11, "5' UTR Exon 1"},
		{14, "5' UTR Exon 1"},
		{15, "CDS 1"},
		{21, "Intron 1"},
		{35, "CDS 2"},
		{36, "3' UTR Exon 1"},
		{41, "3' UTR Intron 1"},
		{46, "3' UTR Exon 2"},
		{60, "Downstream"},
	} {
		if got := cds[v.pos-1]; got != v.want {
			t.Errorf("cds annotation at %d: got %q, want %q", v.pos, got, v.want)
		}
	}
}

func TestExonIndexes(t *testing.T) {

	s := testGene()

	if got := s.ATGPos(); got != 15 {
		t.Errorf("ATGPos: got %d, want 15", got)
	}
	if got := s.StopPos(); got != 35 {
		t.Errorf("StopPos: got %d, want 35", got)
	}
	if got, err := s.ATGExonIndex(); err != nil || got != 0 {
		t.Errorf("ATGExonIndex: got %d, %v, want 0", got, err)
	}
	if got, err := s.StopExonIndex(); err != nil || got != 1 {
		t.Errorf("StopExonIndex: got %d, %v, want 1", got, err)
	}
}

func TestRegionsNoMetadata(t *testing.T) {

	s := &Sequence{Name: "x", Seq: "ACGT"}
	if _, err := s.ExonRegions(); err == nil {
		t.Error("ExonRegions on bare sequence: expected error")
	}
	if _, err := s.CDSRegions(); err == nil {
		t.Error("CDSRegions on bare sequence: expected error")
	}
}
