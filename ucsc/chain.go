// Copyright 2024, the pvtools contributors.

package ucsc

import (
	"os/exec"

	"github.com/biogo/external"
)

// AxtChain builds an axtChain command joining psl alignments into
// chains.
type AxtChain struct {
	// Usage: axtChain [options] -linearGap=loose in.axt tSeq qSeq out.chain
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}axtChain{{end}}"` // axtChain

	Psl       bool   `buildarg:"{{if .}}-psl{{end}}"`               // -psl
	LinearGap string `buildarg:"{{with .}}-linearGap={{.}}{{end}}"` // -linearGap=medium|loose
	InFile    string `buildarg:"{{if .}}{{.}}{{end}}"`              // <in.psl>
	Target    string `buildarg:"{{if .}}{{.}}{{end}}"`              // <target.2bit>
	Query     string `buildarg:"{{if .}}{{.}}{{end}}"`              // <query.2bit>
	OutFile   string `buildarg:"{{if .}}{{.}}{{end}}"`              // <out.chain>
}

func (a AxtChain) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(a)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// ChainMergeSort builds a chainMergeSort command combining sorted
// chain files; the merged chain is written to stdout.
type ChainMergeSort struct {
	// Usage: chainMergeSort file(s) or chainMergeSort -inputList=fileList
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}chainMergeSort{{end}}"` // chainMergeSort

	InputList string `buildarg:"{{with .}}-inputList={{.}}{{end}}"` // -inputList=<file>
	InFile    string `buildarg:"{{if .}}{{.}}{{end}}"`              // <in.chain>
}

func (m ChainMergeSort) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(m)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// ChainSplit builds a chainSplit command distributing a merged chain
// file into one file per target sequence.
type ChainSplit struct {
	// Usage: chainSplit outDir inChain(s)
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}chainSplit{{end}}"` // chainSplit

	OutDir string `buildarg:"{{if .}}{{.}}{{end}}"` // <outDir>
	InFile string `buildarg:"{{if .}}{{.}}{{end}}"` // <in.chain>
}

func (s ChainSplit) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(s)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
