// Copyright 2024, the pvtools contributors.

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFasta(t *testing.T, body string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.fa")
	if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestSizes(t *testing.T) {

	name := writeFasta(t, ">chr22 human\nACGTACGTAC\nGGNNN\n>NG_008376.1\nACGT\n")

	sizes, err := Sizes(name)
	if err != nil {
		t.Fatalf("Sizes: %v", err)
	}
	want := []SeqSize{{"chr22", 15}, {"NG_008376.1", 4}}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("got %v, want %v", sizes, want)
	}
}

func TestSizesDuplicateName(t *testing.T) {

	name := writeFasta(t, ">chr22\nACGT\n>chr22\nGGGG\n")

	if _, err := Sizes(name); err == nil {
		t.Fatal("expected error for duplicate sequence name")
	}
}

func TestSizesEmpty(t *testing.T) {

	name := writeFasta(t, "")

	if _, err := Sizes(name); err == nil {
		t.Fatal("expected error for empty fasta")
	}
}

func TestWriteSizes(t *testing.T) {

	var buf bytes.Buffer
	err := WriteSizes(&buf, []SeqSize{{"chr22", 15}, {"NG_008376.1", 4}})
	if err != nil {
		t.Fatalf("WriteSizes: %v", err)
	}
	want := "chr22\t15\nNG_008376.1\t4\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSizesFile(t *testing.T) {

	name := writeFasta(t, ">chr22\nACGTACGTAC\n")
	out := filepath.Join(t.TempDir(), "chrom.sizes")

	if err := WriteSizesFile(name, out); err != nil {
		t.Fatalf("WriteSizesFile: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "chr22\t10\n" {
		t.Errorf("got %q", string(b))
	}
}
