package diplotype

import "testing"

// TestBuildReferenceTableEndToEnd exercises the whole pipeline on a small
// locus: subvariant collapse, hybrid synthesis, CNV exceptions and
// overrides, x2 expansion, tiering, and pairing.
func TestBuildReferenceTableEndToEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Combinations = [][]string{{"CYP2D6*4", "CYP2D6*10"}}
	cfg.CNVExceptions = []string{"CYP2D6*5", "CYP2D6*4"}
	cfg.CNVOverrides = map[string]int{"CYP2D6*4+CYP2D6*10": 1}
	cfg.Duplications = []string{"CYP2D6*2"}
	cfg.TopTier = []string{"CYP2D6*1", "CYP2D6*2"}

	haplotypes, err := AnnotatedHaplotypes(testRecords(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	// *1, *5, *2, *4, *10 survive collapsing; the hybrid and *2x2 join them.
	if haplotypes.Len() != 7 {
		t.Fatalf("Got %d haplotypes, expected 7: %v", haplotypes.Len(), haplotypes.Names())
	}

	hybrid, ok := haplotypes.Get("CYP2D6*4+CYP2D6*10")
	if !ok {
		t.Fatal("hybrid haplotype missing")
	}
	if hybrid.CNV != 1 {
		t.Errorf("Got CNV %d for the hybrid, expected the override value 1", hybrid.CNV)
	}
	if hybrid.Ranking != RankSecondTier {
		t.Errorf("Got ranking %d for the hybrid, expected %d", hybrid.Ranking, RankSecondTier)
	}
	// *4 carries rs3=G, *10 carries rs1=T and rs3=C; merged rs3 sorts.
	if got := hybrid.Alleles["rs3"]; got != "C/G" {
		t.Errorf("Got rs3=%q for the hybrid, expected C/G", got)
	}

	four, _ := haplotypes.Get("CYP2D6*4")
	if four.CNV != 0 {
		t.Errorf("Got CNV %d for *4, expected the exception value 0", four.CNV)
	}

	dup, ok := haplotypes.Get("CYP2D6*2x2")
	if !ok {
		t.Fatal("*2x2 missing")
	}
	if dup.CNV != 2 || dup.Ranking != RankTopTier {
		t.Errorf("Got CNV=%d ranking=%d for *2x2, expected CNV=2 ranking=%d", dup.CNV, dup.Ranking, RankTopTier)
	}

	table := PairHaplotypes(haplotypes)
	if want := 7 * 8 / 2; table.Len() != want {
		t.Errorf("Got %d diplotypes, expected %d", table.Len(), want)
	}

	// Deletion over duplication: CNV 0 + 2.
	d, ok := table.Get("CYP2D6*2x2/CYP2D6*5")
	if !ok {
		t.Fatalf("CYP2D6*2x2/CYP2D6*5 missing, have %v", table.Labels())
	}
	if d.CNV != 2 {
		t.Errorf("Got CNV %d, expected 2", d.CNV)
	}
	if d.Ranking != 2 {
		t.Errorf("Got ranking %d, expected 2", d.Ranking)
	}
}

func TestBuildReferenceTableRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Sites = nil

	if _, err := BuildReferenceTable(testRecords(), cfg); err == nil {
		t.Error("expected an invalid config to fail construction")
	}
}
