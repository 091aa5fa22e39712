package diplotype

import (
	"log"
	"regexp"
	"strconv"
)

var starAlleleNumber = regexp.MustCompile(`\*([0-9]+)`)

// numericKey extracts the first integer following a '*' in a haplotype
// name, e.g. CYP2D6*41x3 -> 41. Names without a star-allele number sort
// with key zero.
func numericKey(name string) int {
	m := starAlleleNumber.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// PairHaplotypes generates every unordered haplotype pair, self-pairs
// included, and merges each pair into a diplotype record: n haplotypes
// yield n(n+1)/2 diplotypes. Pairs are generated in table order so the
// reference table's iteration order is reproducible.
func PairHaplotypes(t *HaplotypeTable) *ReferenceTable {
	names := t.Names()
	rt := NewReferenceTable()

	for i := 0; i < len(names); i++ {
		for j := i; j < len(names); j++ {
			h1, _ := t.Get(names[i])
			h2, _ := t.Get(names[j])
			rt.Insert(mergePair(h1, h2))
		}
	}

	if want := len(names) * (len(names) + 1) / 2; rt.Len() != want {
		log.Printf("diplotype: built %d diplotypes for %d haplotypes, expected %d; label collisions dropped records", rt.Len(), len(names), want)
	}

	return rt
}

// mergePair merges two haplotypes into one diplotype. The pair is put in
// canonical order first: ascending by star-allele number, ties keeping
// generation order. Both the label and the merged values follow that order,
// so merging A with B and B with A produces identical records. Site alleles
// that agree collapse to the single value; alleles that differ join as
// "value1/value2", deliberately unsorted and without dedup so each side of
// the pair stays attributable. CNV and Ranking always sum, including for
// self-pairs, where they double.
func mergePair(h1, h2 *Haplotype) *Diplotype {
	first, second := h1, h2
	if numericKey(second.Name) < numericKey(first.Name) {
		first, second = second, first
	}

	d := &Diplotype{
		Label:   first.Name + "/" + second.Name,
		Alleles: make(map[string]string, len(first.Alleles)),
		CNV:     first.CNV + second.CNV,
		Ranking: first.Ranking + second.Ranking,
	}

	for site, v1 := range first.Alleles {
		if v2, ok := second.Alleles[site]; ok && v1 != v2 {
			d.Alleles[site] = v1 + "/" + v2
		} else {
			d.Alleles[site] = v1
		}
	}
	// Both maps are total over the same catalog in a correctly built table,
	// but a site carried by only one side still belongs in the merge.
	for site, v2 := range second.Alleles {
		if _, ok := first.Alleles[site]; !ok {
			d.Alleles[site] = v2
		}
	}

	return d
}
