// Copyright 2024, the pvtools contributors.

package liftover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadSequence(t *testing.T) {

	dir := t.TempDir()
	fa := filepath.Join(dir, "NG_000001.fa")
	js := filepath.Join(dir, "NG_000001.json")

	fasta := ">NG_000001.1 Homo sapiens test gene\nACGTACGTAC\nGGGGGNNNNN\n"
	if err := os.WriteFile(fa, []byte(fasta), 0o644); err != nil {
		t.Fatal(err)
	}
	meta := `{"ExonCount": 1, "ExonStarts": [3], "ExonEnds": [12], "CDSStarts": [5], "CDSEnds": [10], "Start": 0, "End": 0}`
	if err := os.WriteFile(js, []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadSequence(fa, js)
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if s.Name != "NG_000001.1 Homo sapiens test gene" {
		t.Errorf("name: got %q", s.Name)
	}
	if s.Seq != "ACGTACGTACGGGGGNNNNN" {
		t.Errorf("seq: got %q", s.Seq)
	}
	if s.Len() != 20 {
		t.Errorf("len: got %d, want 20", s.Len())
	}
	if s.Meta == nil || s.Meta.ExonStarts[0] != 3 || s.Meta.CDSEnds[0] != 10 {
		t.Errorf("metadata: got %+v", s.Meta)
	}
}

func TestReadSequenceNoMetadata(t *testing.T) {

	dir := t.TempDir()
	fa := filepath.Join(dir, "region.fa")
	if err := os.WriteFile(fa, []byte(">chr22\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadSequence(fa, "")
	if err != nil {
		t.Fatalf("ReadSequence: %v", err)
	}
	if s.Meta != nil {
		t.Errorf("expected nil metadata, got %+v", s.Meta)
	}
}

func TestReadSequenceEmpty(t *testing.T) {

	dir := t.TempDir()
	fa := filepath.Join(dir, "empty.fa")
	if err := os.WriteFile(fa, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSequence(fa, ""); err == nil {
		t.Fatal("expected error for empty fasta")
	}
}

func TestReadSequenceBadMetadata(t *testing.T) {

	dir := t.TempDir()
	fa := filepath.Join(dir, "g.fa")
	js := filepath.Join(dir, "g.json")
	if err := os.WriteFile(fa, []byte(">g\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	meta := `{"ExonStarts": [1, 3], "ExonEnds": [2]}`
	if err := os.WriteFile(js, []byte(meta), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSequence(fa, js); err == nil {
		t.Fatal("expected error for mismatched exon lists")
	}
}
