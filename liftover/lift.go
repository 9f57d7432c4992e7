// Copyright 2024, the pvtools contributors.

package liftover

import (
	"fmt"
	"strings"
)

// Liftover returns the HGVS-style transcript position (c. notation)
// of every base of the sequence.  Coding bases count from c.1 at the
// translation start; intronic bases are written relative to the
// preceding exonic base (c.87+2); 5' UTR bases are negative and 3'
// UTR bases carry a * prefix, with the Upstream and Downstream spans
// continuing those series beyond the transcript.
//
// The number of generated positions must equal the sequence length;
// anything else means the region table does not partition the
// sequence and is reported as an error.
func (s *Sequence) Liftover() ([]string, error) {

	rr, err := s.CDSRegions()
	if err != nil {
		return nil, err
	}
	utr5ExonLen, err := s.regionLen("5' UTR Exon")
	if err != nil {
		return nil, err
	}
	utr5IntronLen, err := s.regionLen("5' UTR Intron")
	if err != nil {
		return nil, err
	}
	utr3ExonLen, err := s.regionLen("3' UTR Exon")
	if err != nil {
		return nil, err
	}

	var pos []string
	cdsSum := 1
	utr5ExonOffset := -utr5ExonLen
	utr3ExonSum := 1

	for _, r := range rr {
		n := r.End - r.Start + 1
		switch {
		case strings.HasPrefix(r.Name, "CDS"):
			for x := cdsSum; x < cdsSum+n; x++ {
				pos = append(pos, fmt.Sprintf("%d", x))
			}
			cdsSum += n
		case strings.HasPrefix(r.Name, "Intron"):
			for x := 1; x <= n; x++ {
				pos = append(pos, fmt.Sprintf("%d+%d", cdsSum-1, x))
			}
		case r.Name == "Upstream":
			a := s.ATGPos() - utr5IntronLen
			for x := 1; x <= r.End; x++ {
				pos = append(pos, fmt.Sprintf("%d", x-a))
			}
		case strings.HasPrefix(r.Name, "5' UTR Exon"):
			for x := utr5ExonOffset; x < utr5ExonOffset+n; x++ {
				pos = append(pos, fmt.Sprintf("%d", x))
			}
			utr5ExonOffset += n
		case strings.HasPrefix(r.Name, "5' UTR Intron"):
			for x := 1; x <= n; x++ {
				pos = append(pos, fmt.Sprintf("%d+%d", utr5ExonOffset-1, x))
			}
		case r.Name == "Downstream":
			a := utr3ExonLen + 1
			for x := 0; x < n; x++ {
				pos = append(pos, fmt.Sprintf("*%d", x+a))
			}
		case strings.HasPrefix(r.Name, "3' UTR Exon"):
			for x := utr3ExonSum; x < utr3ExonSum+n; x++ {
				pos = append(pos, fmt.Sprintf("*%d", x))
			}
			utr3ExonSum += n
		case strings.HasPrefix(r.Name, "3' UTR Intron"):
			for x := 1; x <= n; x++ {
				pos = append(pos, fmt.Sprintf("*%d+%d", utr3ExonSum-1, x))
			}
		default:
			for x := 0; x < n; x++ {
				pos = append(pos, ".")
			}
		}
	}

	if len(pos) != len(s.Seq) {
		return nil, fmt.Errorf("liftover: expected %d positions but generated %d", len(s.Seq), len(pos))
	}

	for i, p := range pos {
		pos[i] = "c." + p
	}

	return pos, nil
}
