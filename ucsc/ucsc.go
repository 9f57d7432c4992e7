// Copyright 2024, the pvtools contributors.

// Package ucsc provides command builders for the UCSC genome tools
// used by the pvchain pipeline.  The builders only assemble argument
// lists; the formats the tools read and write (2bit, psl, chain, net)
// are opaque to this package and are passed around as file paths.
//
// Every tool accepts the literal file names "stdin" and "stdout" in
// place of a path, following the kent source conventions.
package ucsc
