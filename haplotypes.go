package diplotype

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
)

// BuildHaplotypes normalizes raw per-haplotype variant records into a table
// of haplotypes whose allele maps are total over cfg.Sites. Records whose
// site is not in the catalog are ignored. The configured reference and
// deletion haplotypes are always present, even when the input never mentions
// them: the reference haplotype carries no variants by definition, and the
// deletion haplotype only becomes meaningful once the CNV stage zeroes it.
func BuildHaplotypes(records []VariantRecord, cfg Config) (*HaplotypeTable, error) {
	if len(cfg.Sites) == 0 {
		return nil, pfx.Err(fmt.Errorf("site catalog is empty"))
	}

	inCatalog := make(map[string]bool, len(cfg.Sites))
	for _, site := range cfg.Sites {
		inCatalog[site] = true
	}

	type variantKey struct {
		haplotype string
		site      string
	}

	// Reference alleles are catalog-wide; a later record for the same site
	// overwrites an earlier one.
	reference := make(map[string]string)
	variants := make(map[variantKey]string)
	var order []string
	seen := make(map[string]bool)

	for _, rec := range records {
		if !inCatalog[rec.Site] {
			continue
		}
		if rec.Haplotype == "" {
			return nil, pfx.Err(fmt.Errorf("variant record at site %s has a blank haplotype name", rec.Site))
		}
		if rec.Reference != "" {
			reference[rec.Site] = rec.Reference
		}
		if rec.Variant != "" {
			variants[variantKey{rec.Haplotype, rec.Site}] = rec.Variant
		}
		if !seen[rec.Haplotype] {
			seen[rec.Haplotype] = true
			order = append(order, rec.Haplotype)
		}
	}

	// The reference and deletion haplotypes lead the table when the input
	// lacks them, so they pair first and keep label generation stable.
	var names []string
	for _, required := range []string{cfg.ReferenceHaplotype, cfg.DeletionHaplotype} {
		if required != "" && !seen[required] {
			seen[required] = true
			names = append(names, required)
		}
	}
	names = append(names, order...)

	table := NewHaplotypeTable()
	for _, name := range names {
		h := &Haplotype{Name: name, Alleles: make(map[string]string, len(cfg.Sites))}
		for _, site := range cfg.Sites {
			if allele, ok := variants[variantKey{name, site}]; ok {
				h.Alleles[site] = allele
			} else if allele, ok := reference[site]; ok {
				h.Alleles[site] = allele
			} else {
				h.Alleles[site] = MissingAllele
			}
		}
		table.Add(h)
	}

	collapseSubvariants(table)

	return table, nil
}

// collapseSubvariants removes any sub-allele (a name with a
// subvariantSeparator suffix) whose allele map is identical to its base
// haplotype's: it would be indistinguishable in every downstream comparison
// and would only inflate the pair table. Idempotent.
func collapseSubvariants(t *HaplotypeTable) {
	for _, name := range t.Names() {
		sep := strings.Index(name, subvariantSeparator)
		if sep < 0 {
			continue
		}
		base, ok := t.Get(name[:sep])
		if !ok {
			continue
		}
		sub, _ := t.Get(name)
		if equalAlleles(sub.Alleles, base.Alleles) {
			t.Remove(name)
		}
	}
}

func equalAlleles(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for site, allele := range a {
		if other, ok := b[site]; !ok || other != allele {
			return false
		}
	}
	return true
}
