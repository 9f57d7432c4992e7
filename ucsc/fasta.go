// Copyright 2024, the pvtools contributors.

package ucsc

import (
	"os/exec"

	"github.com/biogo/external"
)

// FaToTwoBit builds a faToTwoBit command converting fasta input to
// the 2bit format read by blat and the chain tools.
type FaToTwoBit struct {
	// Usage: faToTwoBit in.fa out.2bit
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}faToTwoBit{{end}}"` // faToTwoBit

	NoMask  bool   `buildarg:"{{if .}}-noMask{{end}}"` // -noMask
	InFile  string `buildarg:"{{if .}}{{.}}{{end}}"`   // <in.fa>
	OutFile string `buildarg:"{{if .}}{{.}}{{end}}"`   // <out.2bit>
}

func (t FaToTwoBit) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(t)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// FaSplit builds a faSplit command fragmenting a fasta file into
// chunks, optionally recording each chunk's offset in a lift file.
type FaSplit struct {
	// Usage: faSplit how input.fa count outRoot
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}faSplit{{end}}"` // faSplit

	How     string `buildarg:"{{if .}}{{.}}{{end}}"`          // size|sequence|base
	InFile  string `buildarg:"{{if .}}{{.}}{{end}}"`          // <input.fa>
	Count   int    `buildarg:"{{if .}}{{.}}{{end}}"`          // <count>
	OutRoot string `buildarg:"{{if .}}{{.}}{{end}}"`          // <outRoot>
	Lift    string `buildarg:"{{with .}}-lift={{.}}{{end}}"`  // -lift=<file>
	MaxN    int    `buildarg:"{{if .}}-maxN={{.}}{{end}}"`    // -maxN=<n>
	OneFile bool   `buildarg:"{{if .}}-oneFile{{end}}"`       // -oneFile
}

func (s FaSplit) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(s)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
