// Package diplotype builds an exhaustive reference table of two-haplotype
// genotypes for a structurally variable gene locus (star-allele haplotypes,
// copy-number variation, hybrid genes) and matches observed sample calls
// against that table. The default locus definition is CYP2D6, but every rule
// is driven by a Config so other loci with the same shape can be described.
package diplotype

import (
	"github.com/carbocation/pfx"
)

// MissingAllele marks a site for which no allele is known, either because
// the catalog carries no reference allele for it or because no member of a
// hybrid combination contributes a value there.
const MissingAllele = "-"

// subvariantSeparator splits a haplotype name into its base name and the
// sub-allele suffix, e.g. CYP2D6*4.013 -> CYP2D6*4.
const subvariantSeparator = "."

// BuildReferenceTable runs the full construction pipeline: haplotype table,
// hybrid combinations, CNV annotation, duplication/triplication expansion,
// ranking, and pairwise diplotype generation.
func BuildReferenceTable(records []VariantRecord, cfg Config) (*ReferenceTable, error) {
	haplotypes, err := AnnotatedHaplotypes(records, cfg)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return PairHaplotypes(haplotypes), nil
}

// AnnotatedHaplotypes runs the construction stages short of pairing and
// returns the fully annotated haplotype table. Each stage takes the table
// from the previous one and returns it updated; no state is shared between
// stages other than the table handed along.
func AnnotatedHaplotypes(records []VariantRecord, cfg Config) (*HaplotypeTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	haplotypes, err := BuildHaplotypes(records, cfg)
	if err != nil {
		return nil, pfx.Err(err)
	}

	haplotypes, err = ExpandCombinations(haplotypes, cfg)
	if err != nil {
		return nil, pfx.Err(err)
	}

	haplotypes = AssignCNV(haplotypes, cfg)
	haplotypes = ExpandCNVVariants(haplotypes, cfg)
	haplotypes = AssignRanking(haplotypes, cfg)

	return haplotypes, nil
}
