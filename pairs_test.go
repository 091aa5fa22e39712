package diplotype

import (
	"reflect"
	"testing"
)

func pairFixture() *HaplotypeTable {
	table := NewHaplotypeTable()
	table.Add(&Haplotype{Name: "CYP2D6*10", Alleles: map[string]string{"rs1": "T", "rs2": "G"}, CNV: 1, Ranking: 2})
	table.Add(&Haplotype{Name: "CYP2D6*2", Alleles: map[string]string{"rs1": "C", "rs2": "G"}, CNV: 1, Ranking: 2})
	table.Add(&Haplotype{Name: "CYP2D6*5", Alleles: map[string]string{"rs1": "C", "rs2": "G"}, CNV: 0, Ranking: 2})
	return table
}

func TestPairHaplotypesCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		table := NewHaplotypeTable()
		for i := 0; i < n; i++ {
			table.Add(&Haplotype{
				Name:    "H" + string(rune('A'+i)),
				Alleles: map[string]string{"rs1": string(rune('A' + i))},
			})
		}

		rt := PairHaplotypes(table)
		want := n * (n + 1) / 2
		if rt.Len() != want {
			t.Errorf("Got %d diplotypes for %d haplotypes, expected %d", rt.Len(), n, want)
		}
	}
}

func TestPairLabelsOrderedByStarNumber(t *testing.T) {
	rt := PairHaplotypes(pairFixture())

	// *10 precedes *2 in the table, but the label orders by star number.
	if _, ok := rt.Get("CYP2D6*2/CYP2D6*10"); !ok {
		t.Errorf("expected label CYP2D6*2/CYP2D6*10, have %v", rt.Labels())
	}
	if _, ok := rt.Get("CYP2D6*10/CYP2D6*2"); ok {
		t.Error("label must not use raw generation order")
	}
}

func TestPairMergeFollowsLabelOrder(t *testing.T) {
	rt := PairHaplotypes(pairFixture())

	d, ok := rt.Get("CYP2D6*2/CYP2D6*10")
	if !ok {
		t.Fatal("pair CYP2D6*2/CYP2D6*10 missing")
	}
	// rs1 differs: *2 contributes C, *10 contributes T, joined in label
	// order without sorting or dedup. rs2 agrees and collapses.
	want := map[string]string{"rs1": "C/T", "rs2": "G"}
	if !reflect.DeepEqual(d.Alleles, want) {
		t.Errorf("Got %v, expected %v", d.Alleles, want)
	}
}

func TestPairMergeOrderStable(t *testing.T) {
	table := pairFixture()
	h2, _ := table.Get("CYP2D6*2")
	h10, _ := table.Get("CYP2D6*10")

	a := mergePair(h2, h10)
	b := mergePair(h10, h2)

	if a.Label != b.Label {
		t.Errorf("Got labels %q and %q, expected identical labels", a.Label, b.Label)
	}
	if !reflect.DeepEqual(a.Alleles, b.Alleles) {
		t.Errorf("Got merged alleles %v and %v, expected identical content", a.Alleles, b.Alleles)
	}
}

func TestPairSumsIncludingSelfPairs(t *testing.T) {
	rt := PairHaplotypes(pairFixture())

	for _, tc := range []struct {
		label   string
		cnv     int
		ranking int
	}{
		{"CYP2D6*2/CYP2D6*10", 2, 4},
		{"CYP2D6*2/CYP2D6*5", 1, 4},
		{"CYP2D6*10/CYP2D6*10", 2, 4},
		{"CYP2D6*5/CYP2D6*5", 0, 4},
	} {
		d, ok := rt.Get(tc.label)
		if !ok {
			t.Errorf("pair %s missing", tc.label)
			continue
		}
		if d.CNV != tc.cnv {
			t.Errorf("Got CNV %d for %s, expected %d", d.CNV, tc.label, tc.cnv)
		}
		if d.Ranking != tc.ranking {
			t.Errorf("Got ranking %d for %s, expected %d", d.Ranking, tc.label, tc.ranking)
		}
	}
}

func TestPairLabelStableForEqualKeys(t *testing.T) {
	table := NewHaplotypeTable()
	table.Add(&Haplotype{Name: "HA", Alleles: map[string]string{"rs1": "A"}})
	table.Add(&Haplotype{Name: "HB", Alleles: map[string]string{"rs1": "T"}})

	rt := PairHaplotypes(table)

	// Neither name carries a star number, so both sort with key zero and
	// the generation order is preserved.
	want := []string{"HA/HA", "HA/HB", "HB/HB"}
	if got := rt.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Got labels %v, expected %v", got, want)
	}
}

func TestNumericKey(t *testing.T) {
	for _, tc := range []struct {
		name string
		want int
	}{
		{"CYP2D6*41x3", 41},
		{"CYP2D6*4.013", 4},
		{"CYP2D6*13+CYP2D6*68+CYP2D6*4", 13},
		{"noStarHere", 0},
	} {
		if got := numericKey(tc.name); got != tc.want {
			t.Errorf("Got %d for %q, expected %d", got, tc.name, tc.want)
		}
	}
}
