package diplotype

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/pfx"
)

// CombinationSeparator joins the member names of a synthesized hybrid
// haplotype, e.g. CYP2D6*36+CYP2D6*10.
const CombinationSeparator = "+"

// ExpandCombinations synthesizes one hybrid haplotype per tuple in
// cfg.Combinations and adds it to the table. Each combination is computed
// independently from the base haplotypes, so the order of the tuples has no
// effect on any individual result.
//
// A tuple member that is absent from the table (for example a sub-allele
// that was collapsed into its base) contributes nothing and is skipped. A
// tuple with no known member at all is refused: it would synthesize a
// haplotype made entirely of missing-allele sentinels and poison the pair
// table downstream.
func ExpandCombinations(t *HaplotypeTable, cfg Config) (*HaplotypeTable, error) {
	// Hybrids are resolved against the base table and appended only after
	// every tuple has been computed, so no combination can see another.
	var hybrids []*Haplotype

	for _, combo := range cfg.Combinations {
		name := strings.Join(combo, CombinationSeparator)

		known := 0
		for _, member := range combo {
			if _, ok := t.Get(member); ok {
				known++
			}
		}
		if known == 0 {
			return nil, pfx.Err(fmt.Errorf("combination %s references no haplotype known to the table", name))
		}

		hybrid := &Haplotype{Name: name, Alleles: make(map[string]string, len(cfg.Sites))}
		for _, site := range cfg.Sites {
			var contributed []string
			for _, member := range combo {
				h, ok := t.Get(member)
				if !ok {
					continue
				}
				if allele, ok := h.Alleles[site]; ok {
					contributed = append(contributed, allele)
				}
			}
			hybrid.Alleles[site] = mergeContributions(contributed)
		}

		hybrids = append(hybrids, hybrid)
	}

	for _, hybrid := range hybrids {
		t.Add(hybrid)
	}

	return t, nil
}

// mergeContributions folds the alleles contributed by a combination's
// members at one site: none -> missing sentinel, one distinct value -> that
// value, several distinct values -> alphabetical join with "/".
func mergeContributions(alleles []string) string {
	if len(alleles) == 0 {
		return MissingAllele
	}

	distinct := make([]string, 0, len(alleles))
	seen := make(map[string]bool, len(alleles))
	for _, allele := range alleles {
		if !seen[allele] {
			seen[allele] = true
			distinct = append(distinct, allele)
		}
	}

	if len(distinct) == 1 {
		return distinct[0]
	}

	sort.Strings(distinct)
	return strings.Join(distinct, "/")
}
