// Copyright 2024, the pvtools contributors.

package ucsc

import (
	"os/exec"

	"github.com/biogo/external"
)

// Blat builds a blat command aligning a query fasta against a 2bit
// database, writing psl output.
type Blat struct {
	// Usage: blat database query [-ooc=11.ooc] output.psl
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}blat{{end}}"` // blat

	TileSize    int    `buildarg:"{{if .}}-tileSize={{.}}{{end}}"`    // -tileSize=<n>
	MinScore    int    `buildarg:"{{if .}}-minScore={{.}}{{end}}"`    // -minScore=<n>
	MinIdentity int    `buildarg:"{{if .}}-minIdentity={{.}}{{end}}"` // -minIdentity=<n>
	FastMap     bool   `buildarg:"{{if .}}-fastMap{{end}}"`           // -fastMap
	NoHead      bool   `buildarg:"{{if .}}-noHead{{end}}"`            // -noHead
	Database    string `buildarg:"{{if .}}{{.}}{{end}}"`              // <database>
	Query       string `buildarg:"{{if .}}{{.}}{{end}}"`              // <query>
	OutFile     string `buildarg:"{{if .}}{{.}}{{end}}"`              // <output.psl>
}

func (b Blat) BuildCommand() (*exec.Cmd, error) {
	cl, err := external.Build(b)
	if err != nil {
		return nil, err
	}
	return exec.Command(cl[0], cl[1:]...), nil
}
