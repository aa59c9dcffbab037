/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

package content

import "testing"

func TestRepairChart(t *testing.T) {
	tests := []struct {
		name        string
		section     SiteSection
		wantRepair  bool
		wantMedia   MediaType
		wantChartOK bool
	}{{
		name: "consistent chart untouched",
		section: SiteSection{
			MediaType: MediaChart,
			ChartData: &ChartData{Labels: []string{"a", "b"}, Values: []float64{1, 2}},
		},
		wantRepair:  false,
		wantMedia:   MediaChart,
		wantChartOK: true,
	}, {
		name: "length mismatch downgraded",
		section: SiteSection{
			MediaType: MediaChart,
			ChartData: &ChartData{Labels: []string{"a", "b", "c"}, Values: []float64{1, 2}},
		},
		wantRepair: true,
		wantMedia:  MediaNone,
	}, {
		name:       "missing chart data downgraded",
		section:    SiteSection{MediaType: MediaChart},
		wantRepair: true,
		wantMedia:  MediaNone,
	}, {
		name:       "image section untouched",
		section:    SiteSection{MediaType: MediaImage, ImageSearchQuery: "ocean"},
		wantRepair: false,
		wantMedia:  MediaImage,
	}, {
		name:       "none section untouched",
		section:    SiteSection{MediaType: MediaNone},
		wantRepair: false,
		wantMedia:  MediaNone,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.section
			if got := s.RepairChart(); got != tt.wantRepair {
				t.Errorf("RepairChart() = %v, want %v", got, tt.wantRepair)
			}
			if s.MediaType != tt.wantMedia {
				t.Errorf("MediaType = %q, want %q", s.MediaType, tt.wantMedia)
			}
			if tt.wantChartOK && s.ChartData == nil {
				t.Error("consistent chart data was dropped")
			}
			if !s.ChartConsistent() {
				t.Error("section still violates the chart invariant after repair")
			}
		})
	}
}

func TestRepairCharts(t *testing.T) {
	w := WebsiteContent{Sections: []SiteSection{
		{MediaType: MediaChart, ChartData: &ChartData{Labels: []string{"x"}, Values: []float64{1}}},
		{MediaType: MediaChart, ChartData: &ChartData{Labels: []string{"x", "y"}, Values: []float64{1}}},
		{MediaType: MediaNone},
		{MediaType: MediaChart},
	}}
	if got := w.RepairCharts(); got != 2 {
		t.Errorf("RepairCharts() = %d, want 2", got)
	}
	for i, s := range w.Sections {
		if !s.ChartConsistent() {
			t.Errorf("section %d still inconsistent", i)
		}
	}
}

func TestVariantRepair(t *testing.T) {
	v := &Variant{
		Mode: ModeSearch,
		Search: &SearchResult{WebsiteContent: WebsiteContent{Sections: []SiteSection{
			{MediaType: MediaChart},
		}}},
	}
	v.Repair()
	if got := v.Search.WebsiteContent.Sections[0].MediaType; got != MediaNone {
		t.Errorf("Repair() left mediaType %q, want %q", got, MediaNone)
	}

	g := &Variant{
		Mode:    ModeGrammar,
		Grammar: &GrammarAnalysis{Segments: []GrammarSegment{{Text: "a"}, {Text: "b"}}},
	}
	g.Repair()
	for i, seg := range g.Grammar.Segments {
		if seg.ID == "" {
			t.Errorf("Repair() left segment %d without an id", i)
		}
	}
}
