// Copyright 2024, the pvtools contributors.

package utils

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// PipelineTools lists the UCSC binaries invoked by pvchain, in
// pipeline order.
var PipelineTools = []string{
	"faToTwoBit",
	"faSplit",
	"blat",
	"liftUp",
	"axtChain",
	"chainMergeSort",
	"chainSplit",
	"chainNet",
	"netChainSubset",
}

// PrependPath places dir at the front of the PATH environment
// variable so that fetched binaries shadow any system copies.
func PrependPath(dir string) error {
	return os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// CheckTools verifies that every named tool resolves to an executable
// file on PATH, returning the first failure.
func CheckTools(names []string) error {

	for _, name := range names {
		p, err := exec.LookPath(name)
		if err != nil {
			return fmt.Errorf("utils: %s not found on PATH (run pvfetch to download it): %v", name, err)
		}
		if err := unix.Access(p, unix.X_OK); err != nil {
			return fmt.Errorf("utils: %s is not executable: %v", p, err)
		}
	}

	return nil
}
