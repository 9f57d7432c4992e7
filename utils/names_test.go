// Copyright 2024, the pvtools contributors.

package utils

import "testing"

func TestBasename(t *testing.T) {

	for _, v := range []struct {
		in   string
		want string
	}{
		{"chr22.fa", "chr22"},
		{"ref/chr22.fa", "chr22"},
		{"/data/NG_008376.fasta", "NG_008376"},
		{"NG_008376.1.fa", "NG_008376.1"},
		{"noext", "noext"},
	} {
		if got := Basename(v.in); got != v.want {
			t.Errorf("Basename(%q): got %q, want %q", v.in, got, v.want)
		}
	}
}

func TestChainName(t *testing.T) {

	for _, v := range []struct {
		chrom, gene string
		want        string
	}{
		{"chr22.fa", "NG_008376.fa", "chr22-NG_008376.chain"},
		{"ref/chr22.fa", "genes/NG_008376.fasta", "chr22-NG_008376.chain"},
	} {
		if got := ChainName(v.chrom, v.gene); got != v.want {
			t.Errorf("ChainName(%q, %q): got %q, want %q", v.chrom, v.gene, got, v.want)
		}
	}
}
