// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pdiddy/profile-site/pkg/types"
)

// --- fixtures ---

func samplePubs() []types.Publication {
	return []types.Publication{
		{
			ID:       "morgan2024deepgene",
			Title:    "DeepGene: Interpretable deep learning for cis-regulatory grammar",
			Authors:  []string{"A. Morgan", "L. Chen", "R. Patel", "S. Gupta"},
			Venue:    "Nature Methods",
			Year:     2024,
			Tags:     []string{"Deep Learning", "Genomics", "Interpretability"},
			Abstract: "We introduce DeepGene, a convolutional attention architecture.",
		},
		{
			ID:       "morgan2023scatlas",
			Title:    "A multimodal atlas of human hematopoiesis at single-cell resolution",
			Authors:  []string{"A. Morgan", "D. K. Nguyen", "Y. Zhao", "J. Lee"},
			Venue:    "Cell",
			Year:     2023,
			Tags:     []string{"Single-Cell", "Multi-omics", "Atlas"},
			Abstract: "We integrate scRNA-seq and ATAC-seq across donors.",
		},
		{
			ID:      "morgan2022repro",
			Title:   "Containers and continuous integration for reproducible bioinformatics",
			Authors: []string{"A. Morgan", "S. Ahmed"},
			Venue:   "PLOS Computational Biology",
			Year:    2022,
			Tags:    []string{"Reproducibility", "Open Source"},
		},
		{
			ID:       "morgan2021benchmark",
			Title:    "Benchmarking peak callers for ATAC-seq across tissues and depths",
			Authors:  []string{"A. Morgan", "E. Silva", "R. Gomez"},
			Venue:    "Genome Research",
			Year:     2021,
			Tags:     []string{"Benchmark", "ATAC-seq"},
			Abstract: "Comprehensive evaluation of peak calling algorithms.",
		},
	}
}

func ids(pubs []types.Publication) []string {
	out := make([]string, len(pubs))
	for i, p := range pubs {
		out[i] = p.ID
	}
	return out
}

// --- Filter ---

func TestFilterDefaultReturnsAll(t *testing.T) {
	pubs := samplePubs()
	got := Filter(pubs, Default())
	if diff := cmp.Diff(pubs, got); diff != "" {
		t.Errorf("Filter(default) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"query matches title any case", Criteria{Query: "deepgene"}, []string{"morgan2024deepgene"}},
		{"query upper case", Criteria{Query: "DEEPGENE"}, []string{"morgan2024deepgene"}},
		{"query trimmed", Criteria{Query: "   cell  "}, []string{"morgan2023scatlas"}},
		{"whitespace query matches all", Criteria{Query: "   "}, []string{"morgan2024deepgene", "morgan2023scatlas", "morgan2022repro", "morgan2021benchmark"}},
		{"query matches abstract", Criteria{Query: "donors"}, []string{"morgan2023scatlas"}},
		{"query matches venue", Criteria{Query: "genome research"}, []string{"morgan2021benchmark"}},
		{"query matches joined authors", Criteria{Query: "morgan s. ahmed"}, []string{"morgan2022repro"}},
		{"query matches no field", Criteria{Query: "quantum"}, []string{}},
		{"query spanning two fields does not match", Criteria{Query: "grammar nature"}, []string{}},
		{"year selects one", Criteria{Year: YearOf(2022)}, []string{"morgan2022repro"}},
		{"year with no records", Criteria{Year: YearOf(1999)}, []string{}},
		{"single tag", Criteria{ActiveTags: []string{"ATAC-seq"}}, []string{"morgan2021benchmark"}},
		{"tags are conjunctive", Criteria{ActiveTags: []string{"Genomics", "Atlas"}}, []string{}},
		{"tags both present", Criteria{ActiveTags: []string{"Genomics", "Deep Learning"}}, []string{"morgan2024deepgene"}},
		{"all criteria combined", Criteria{Query: "morgan", Year: YearOf(2023), ActiveTags: []string{"Atlas"}}, []string{"morgan2023scatlas"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(samplePubs(), tt.criteria))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%s) mismatch (-want +got):\n%s", tt.criteria, diff)
			}
		})
	}
}

func TestFilterYearScenario(t *testing.T) {
	pubs := []types.Publication{
		{ID: "a", Year: 2024, Tags: []string{"AI"}},
		{ID: "b", Year: 2022, Tags: []string{"AI", "Bio"}},
	}
	got := Filter(pubs, Criteria{Year: YearOf(2022)})
	if diff := cmp.Diff([]types.Publication{pubs[1]}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterConjunctiveTags(t *testing.T) {
	onlyAI := []types.Publication{{ID: "a", Year: 2024, Tags: []string{"AI"}}}

	if got := Filter(onlyAI, Criteria{ActiveTags: []string{"AI", "Bio"}}); len(got) != 0 {
		t.Errorf("record tagged {AI} should be excluded by {AI, Bio}, got %v", ids(got))
	}
	if got := Filter(onlyAI, Criteria{ActiveTags: []string{"AI"}}); len(got) != 1 {
		t.Errorf("record tagged {AI} should be included by {AI}, got %v", ids(got))
	}
}

func TestFilterResultIsOrderedSubsetAndPartition(t *testing.T) {
	pubs := samplePubs()
	criteria := []Criteria{
		{Query: "a"},
		{Year: YearOf(2021)},
		{ActiveTags: []string{"Open Source"}},
		{Query: "seq", Year: YearOf(2023)},
	}
	for _, c := range criteria {
		got := Filter(pubs, c)

		// Ordered subset: walk pubs once.
		j := 0
		for _, p := range pubs {
			if j < len(got) && got[j].ID == p.ID {
				j++
			}
		}
		if j != len(got) {
			t.Errorf("Filter(%s) = %v is not an ordered subset", c, ids(got))
		}

		// Every kept record matches and every dropped record fails.
		kept := make(map[string]bool)
		for _, p := range got {
			kept[p.ID] = true
		}
		for _, p := range pubs {
			if Matches(p, c) != kept[p.ID] {
				t.Errorf("Filter(%s): record %s kept=%v but Matches=%v", c, p.ID, kept[p.ID], Matches(p, c))
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	pubs := samplePubs()
	before := samplePubs()
	active := []string{"Genomics"}

	Filter(pubs, Criteria{Query: "x", ActiveTags: active})

	if diff := cmp.Diff(before, pubs); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Genomics"}, active); diff != "" {
		t.Errorf("active tags mutated (-before +after):\n%s", diff)
	}
}

func TestResetYieldsFullList(t *testing.T) {
	pubs := samplePubs()
	c := Criteria{Query: "quantum", Year: YearOf(2022), ActiveTags: []string{"Atlas"}}
	if got := Filter(pubs, c); len(got) != 0 {
		t.Fatalf("precondition: expected no matches, got %v", ids(got))
	}

	reset := c.Reset()
	if !reset.IsDefault() {
		t.Errorf("Reset() = %s, want default", reset)
	}
	if got := Filter(pubs, reset); len(got) != len(pubs) {
		t.Errorf("Filter after reset returned %d, want %d", len(got), len(pubs))
	}
}

// --- ToggleTag ---

func TestToggleTag(t *testing.T) {
	tests := []struct {
		name   string
		active []string
		tag    string
		want   []string
	}{
		{"add to empty", nil, "AI", []string{"AI"}},
		{"append keeps insertion order", []string{"Bio"}, "AI", []string{"Bio", "AI"}},
		{"remove present", []string{"Bio", "AI", "ML"}, "AI", []string{"Bio", "ML"}},
		{"remove last", []string{"AI"}, "AI", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleTag(tt.active, tt.tag)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToggleTag mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToggleTagIsSelfInverse(t *testing.T) {
	for _, active := range [][]string{nil, {"A"}, {"A", "B"}, {"B", "C"}} {
		for _, tag := range []string{"A", "B", "Z"} {
			start := append([]string(nil), active...)
			got := ToggleTag(ToggleTag(active, tag), tag)
			// Removing and re-adding moves the tag to the end, so compare as sets.
			if diff := cmp.Diff(start, got, cmpopts.EquateEmpty(), cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
				t.Errorf("ToggleTag twice on %v with %q (-want +got):\n%s", active, tag, diff)
			}
			if diff := cmp.Diff(start, active, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToggleTag mutated its input: %s", diff)
			}
		}
	}
}

func TestCriteriaWithTagToggled(t *testing.T) {
	c := Criteria{ActiveTags: []string{"A"}}
	next := c.WithTagToggled("B")

	if !next.HasTag("A") || !next.HasTag("B") {
		t.Errorf("WithTagToggled(B) = %v, want A and B", next.ActiveTags)
	}
	if c.HasTag("B") {
		t.Error("WithTagToggled mutated the receiver")
	}
}

// --- derived views ---

func TestYearsDescending(t *testing.T) {
	pubs := append(samplePubs(), types.Publication{ID: "dup", Year: 2023})
	want := []int{2024, 2023, 2022, 2021}
	if diff := cmp.Diff(want, Years(pubs)); diff != "" {
		t.Errorf("Years mismatch (-want +got):\n%s", diff)
	}
}

func TestTagsAscending(t *testing.T) {
	want := []string{
		"ATAC-seq", "Atlas", "Benchmark", "Deep Learning", "Genomics",
		"Interpretability", "Multi-omics", "Open Source", "Reproducibility", "Single-Cell",
	}
	if diff := cmp.Diff(want, Tags(samplePubs())); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivedViewsEmpty(t *testing.T) {
	if got := Years(nil); len(got) != 0 {
		t.Errorf("Years(nil) = %v, want empty", got)
	}
	if got := Tags(nil); len(got) != 0 {
		t.Errorf("Tags(nil) = %v, want empty", got)
	}
}
