// Copyright 2024, the pvtools contributors.

package ucsc

import (
	"os/exec"

	"github.com/biogo/external"
)

// LiftUp builds a liftUp command converting chunk-relative
// coordinates back to coordinates in the original sequence, using the
// lift file written by faSplit.
type LiftUp struct {
	// Usage: liftUp [-type=.psl] destFile liftSpec how sourceFile(s)
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}liftUp{{end}}"` // liftUp

	PslQ       bool   `buildarg:"{{if .}}-pslQ{{end}}"`  // -pslQ
	NoHead     bool   `buildarg:"{{if .}}-nohead{{end}}"` // -nohead
	DestFile   string `buildarg:"{{if .}}{{.}}{{end}}"`  // <destFile>
	LiftFile   string `buildarg:"{{if .}}{{.}}{{end}}"`  // <liftSpec>
	How        string `buildarg:"{{if .}}{{.}}{{end}}"`  // carry|warn|drop|silent
	SourceFile string `buildarg:"{{if .}}{{.}}{{end}}"`  // <sourceFile>
}

func (l LiftUp) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(l)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
