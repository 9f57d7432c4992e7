// Copyright 2024, the pvtools contributors.

package liftover

import (
	"fmt"
	"sort"
	"strings"
)

// A Region is a named, 1-based inclusive span of the sequence.  A
// degenerate region with End < Start covers no bases but is retained
// so that region tables always partition the sequence.
type Region struct {
	Name  string
	Start int
	End   int
}

// Len returns the number of bases the region covers.
func (r Region) Len() int {
	if n := r.End - r.Start + 1; n > 0 {
		return n
	}
	return 0
}

// ExonRegions tabulates the exon-level structure of the sequence:
// the exons, the introns between them, and the flanking Upstream and
// Downstream spans, sorted by start position.
func (s *Sequence) ExonRegions() ([]Region, error) {

	if s.Meta == nil || len(s.Meta.ExonStarts) == 0 {
		return nil, errNoMetadata
	}
	starts := s.Meta.ExonStarts
	ends := s.Meta.ExonEnds

	var rr []Region
	for i := range starts {
		rr = append(rr, Region{Name: fmt.Sprintf("Exon %d", i+1), Start: starts[i], End: ends[i]})
	}
	for i := 0; i < len(starts)-1; i++ {
		rr = append(rr, Region{Name: fmt.Sprintf("Intron %d", i+1), Start: ends[i] + 1, End: starts[i+1] - 1})
	}
	rr = append(rr, Region{Name: "Upstream", Start: 1, End: starts[0] - 1})
	rr = append(rr, Region{Name: "Downstream", Start: ends[len(ends)-1] + 1, End: len(s.Seq)})

	sort.SliceStable(rr, func(i, j int) bool { return rr[i].Start < rr[j].Start })
	return rr, nil
}

// CDSRegions tabulates the coding-level structure of the sequence:
// CDS segments, the introns between them, the 5' and 3' UTR exons and
// introns, and the flanking spans, sorted by start position.
func (s *Sequence) CDSRegions() ([]Region, error) {

	if s.Meta == nil || len(s.Meta.CDSStarts) == 0 {
		return nil, errNoMetadata
	}
	cdsStarts := s.Meta.CDSStarts
	cdsEnds := s.Meta.CDSEnds
	exonStarts := s.Meta.ExonStarts
	exonEnds := s.Meta.ExonEnds

	var rr []Region
	for i := range cdsStarts {
		rr = append(rr, Region{Name: fmt.Sprintf("CDS %d", i+1), Start: cdsStarts[i], End: cdsEnds[i]})
	}
	for i := 0; i < len(cdsStarts)-1; i++ {
		rr = append(rr, Region{Name: fmt.Sprintf("Intron %d", i+1), Start: cdsEnds[i] + 1, End: cdsStarts[i+1] - 1})
	}

	atgIdx, err := s.ATGExonIndex()
	if err != nil {
		return nil, err
	}
	var utr5 []Region
	for x := range exonStarts {
		if x < atgIdx {
			utr5 = append(utr5, Region{Start: exonStarts[x], End: exonEnds[x]})
		} else if x == atgIdx {
			utr5 = append(utr5, Region{Start: exonStarts[x], End: s.ATGPos() - 1})
		} else {
			break
		}
	}
	for i := range utr5 {
		utr5[i].Name = fmt.Sprintf("5' UTR Exon %d", i+1)
	}
	rr = append(rr, utr5...)
	for i := 0; i < len(utr5)-1; i++ {
		rr = append(rr, Region{
			Name:  fmt.Sprintf("5' UTR Intron %d", i+1),
			Start: utr5[i].End + 1,
			End:   utr5[i+1].Start - 1,
		})
	}

	stopIdx, err := s.StopExonIndex()
	if err != nil {
		return nil, err
	}
	var utr3 []Region
	for x := range exonStarts {
		switch {
		case x < stopIdx:
		case x == stopIdx:
			utr3 = append(utr3, Region{Start: s.StopPos() + 1, End: exonEnds[x]})
		default:
			utr3 = append(utr3, Region{Start: exonStarts[x], End: exonEnds[x]})
		}
	}
	for i := range utr3 {
		utr3[i].Name = fmt.Sprintf("3' UTR Exon %d", i+1)
	}
	rr = append(rr, utr3...)
	for i := 0; i < len(utr3)-1; i++ {
		rr = append(rr, Region{
			Name:  fmt.Sprintf("3' UTR Intron %d", i+1),
			Start: utr3[i].End + 1,
			End:   utr3[i+1].Start - 1,
		})
	}

	rr = append(rr, Region{Name: "Upstream", Start: 1, End: exonStarts[0] - 1})
	rr = append(rr, Region{Name: "Downstream", Start: exonEnds[len(exonEnds)-1] + 1, End: len(s.Seq)})

	sort.SliceStable(rr, func(i, j int) bool { return rr[i].Start < rr[j].Start })
	return rr, nil
}

// Annotate returns one region label per base of the sequence, at the
// exon level or, if cds is true, at the coding level.
func (s *Sequence) Annotate(cds bool) ([]string, error) {

	var rr []Region
	var err error
	if cds {
		rr, err = s.CDSRegions()
	} else {
		rr, err = s.ExonRegions()
	}
	if err != nil {
		return nil, err
	}

	var ann []string
	for _, r := range rr {
		for k := 0; k < r.Len(); k++ {
			ann = append(ann, r.Name)
		}
	}

	return ann, nil
}

// ATGPos returns the position of the translation start, the first
// base of the first CDS segment.
func (s *Sequence) ATGPos() int { return s.Meta.CDSStarts[0] }

// StopPos returns the last base of the final CDS segment.
func (s *Sequence) StopPos() int { return s.Meta.CDSEnds[len(s.Meta.CDSEnds)-1] }

// ATGExonIndex returns the index of the exon containing the
// translation start.
func (s *Sequence) ATGExonIndex() (int, error) {
	return s.exonIndexOf(s.ATGPos())
}

// StopExonIndex returns the index of the exon containing the last
// coding base.
func (s *Sequence) StopExonIndex() (int, error) {
	return s.exonIndexOf(s.StopPos())
}

func (s *Sequence) exonIndexOf(pos int) (int, error) {
	for i := range s.Meta.ExonStarts {
		if s.Meta.ExonStarts[i] <= pos && pos <= s.Meta.ExonEnds[i] {
			return i, nil
		}
	}
	return 0, fmt.Errorf("liftover: position %d falls in no exon", pos)
}

func (s *Sequence) regionLen(prefix string) (int, error) {
	rr, err := s.CDSRegions()
	if err != nil {
		return 0, err
	}
	var n int
	for _, r := range rr {
		if strings.HasPrefix(r.Name, prefix) {
			n += r.End - r.Start + 1
		}
	}
	return n, nil
}
