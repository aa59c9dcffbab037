/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package content

// ChartConsistent reports whether the section satisfies the chart invariant:
// a chart-typed section must carry chart data whose values and labels are
// parallel slices of equal length. Non-chart sections trivially satisfy it.
func (s *SiteSection) ChartConsistent() bool {
	if s.MediaType != MediaChart {
		return true
	}
	if s.ChartData == nil {
		return false
	}
	return len(s.ChartData.Values) == len(s.ChartData.Labels)
}

// RepairChart downgrades a section violating the chart invariant to plain
// text (mediaType none, chart data dropped). Returns true if a repair was
// applied. Generator output occasionally ships mismatched label/value
// lengths; rendering such a chart would be misleading, so the section is
// degraded rather than rejected wholesale.
func (s *SiteSection) RepairChart() bool {
	if s.ChartConsistent() {
		return false
	}
	s.MediaType = MediaNone
	s.ChartData = nil
	return true
}

// RepairCharts applies RepairChart to every section, returning the number of
// sections that were downgraded.
func (w *WebsiteContent) RepairCharts() int {
	repaired := 0
	for i := range w.Sections {
		if w.Sections[i].RepairChart() {
			repaired++
		}
	}
	return repaired
}

// Repair applies the defensive repairs appropriate to the variant's shape:
// chart consistency for article-bearing payloads and segment-id uniqueness
// for grammar analyses. Safe to call on any validated variant.
func (v *Variant) Repair() {
	switch v.Mode {
	case ModeStudent:
		if v.StudyGuide != nil {
			v.StudyGuide.WebsiteContent.RepairCharts()
		}
	case ModeSearch:
		if v.Search != nil {
			v.Search.WebsiteContent.RepairCharts()
		}
	case ModeGrammar:
		if v.Grammar != nil {
			v.Grammar.EnsureSegmentIDs()
		}
	}
}
