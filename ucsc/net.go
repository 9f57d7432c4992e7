// Copyright 2024, the pvtools contributors.

package ucsc

import (
	"os/exec"

	"github.com/biogo/external"
)

// ChainNet builds a chainNet command deriving hierarchical,
// non-overlapping nets from a merged chain file.
type ChainNet struct {
	// Usage: chainNet in.chain target.sizes query.sizes target.net query.net
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}chainNet{{end}}"` // chainNet

	InFile      string `buildarg:"{{if .}}{{.}}{{end}}"` // <in.chain>
	TargetSizes string `buildarg:"{{if .}}{{.}}{{end}}"` // <target.sizes>
	QuerySizes  string `buildarg:"{{if .}}{{.}}{{end}}"` // <query.sizes>
	TargetNet   string `buildarg:"{{if .}}{{.}}{{end}}"` // <target.net>
	QueryNet    string `buildarg:"{{if .}}{{.}}{{end}}"` // <query.net>
}

func (n ChainNet) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(n)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}

// NetChainSubset builds a netChainSubset command extracting the
// chains used in a net, yielding the final liftover chain.
type NetChainSubset struct {
	// Usage: netChainSubset in.net in.chain out.chain
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}netChainSubset{{end}}"` // netChainSubset

	InNet   string `buildarg:"{{if .}}{{.}}{{end}}"` // <in.net>
	InChain string `buildarg:"{{if .}}{{.}}{{end}}"` // <in.chain>
	OutFile string `buildarg:"{{if .}}{{.}}{{end}}"` // <out.chain>
}

func (s NetChainSubset) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(s)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
