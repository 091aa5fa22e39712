package diplotype

// AssignCNV introduces the copy-number attribute on every haplotype in the
// table. The default is one gene copy. Names on the exception list (alleles
// whose exon-9 signal is absent, plus the whole-gene deletion) get zero.
// Explicit overrides for hybrid combinations are applied last and therefore
// win over the exception list.
func AssignCNV(t *HaplotypeTable, cfg Config) *HaplotypeTable {
	exceptions := stringSet(cfg.CNVExceptions)

	for _, name := range t.Names() {
		h, _ := t.Get(name)

		cnv := 1
		if exceptions[name] {
			cnv = 0
		}
		if override, ok := cfg.CNVOverrides[name]; ok {
			cnv = override
		}
		h.CNV = cnv
	}

	return t
}

// ExpandCNVVariants adds duplicated and triplicated forms of the haplotypes
// known to occur with increased copy number. Each derived haplotype is a
// first-class copy of its source named with an x2/x3 suffix and the matching
// CNV; the source entry is left untouched. Names on the lists that are not
// in the table are skipped.
func ExpandCNVVariants(t *HaplotypeTable, cfg Config) *HaplotypeTable {
	for _, name := range cfg.Duplications {
		if h, ok := t.Get(name); ok {
			t.Add(h.clone(name+"x2", 2))
		}
	}

	for _, name := range cfg.Triplications {
		if h, ok := t.Get(name); ok {
			t.Add(h.clone(name+"x3", 3))
		}
	}

	return t
}

func stringSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
