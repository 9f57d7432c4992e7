// Copyright 2024, the pvtools contributors.

package utils

import "path/filepath"

// Basename returns the final path element with one extension
// removed, so "ref/chr22.fa" becomes "chr22".
func Basename(p string) string {
	b := filepath.Base(p)
	if ext := filepath.Ext(b); len(ext) > 0 {
		b = b[:len(b)-len(ext)]
	}
	return b
}

// ChainName derives the final chain file name from the chromosome
// and gene fasta paths.
func ChainName(chromFile, geneFile string) string {
	return Basename(chromFile) + "-" + Basename(geneFile) + ".chain"
}
