package diplotype

import (
	"log"
	"sort"
)

// VariantRecord is one row of per-haplotype variant data as distributed by
// PharmVar-style haplotype tables: the haplotype that carries the variant,
// the site it occurs at, and the reference and variant alleles there.
type VariantRecord struct {
	Haplotype string
	Site      string
	Reference string
	Variant   string
}

// Haplotype is one inherited copy of the locus. Alleles is total over the
// configured site catalog: sites where the haplotype carries no variant hold
// the site's reference allele. CNV and Ranking are zero until the annotation
// stages assign them.
type Haplotype struct {
	Name    string
	Alleles map[string]string
	CNV     int
	Ranking int
}

// clone copies the haplotype under a new name with a new CNV value,
// preserving its alleles and ranking.
func (h *Haplotype) clone(name string, cnv int) *Haplotype {
	alleles := make(map[string]string, len(h.Alleles))
	for site, allele := range h.Alleles {
		alleles[site] = allele
	}

	return &Haplotype{
		Name:    name,
		Alleles: alleles,
		CNV:     cnv,
		Ranking: h.Ranking,
	}
}

// HaplotypeTable holds haplotypes in insertion order. The order matters: it
// fixes the order in which diplotype pairs are generated, which in turn
// fixes the matcher's tie-break behavior, so it must be reproducible across
// runs rather than left to map iteration.
type HaplotypeTable struct {
	names  []string
	byName map[string]*Haplotype
}

func NewHaplotypeTable() *HaplotypeTable {
	return &HaplotypeTable{byName: make(map[string]*Haplotype)}
}

// Add inserts or replaces a haplotype. A replaced haplotype keeps its
// original position in the iteration order.
func (t *HaplotypeTable) Add(h *Haplotype) {
	if _, ok := t.byName[h.Name]; !ok {
		t.names = append(t.names, h.Name)
	}
	t.byName[h.Name] = h
}

func (t *HaplotypeTable) Get(name string) (*Haplotype, bool) {
	h, ok := t.byName[name]
	return h, ok
}

func (t *HaplotypeTable) Remove(name string) {
	if _, ok := t.byName[name]; !ok {
		return
	}
	delete(t.byName, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			break
		}
	}
}

// Names returns the haplotype names in insertion order. The returned slice
// is a copy and may be modified by the caller.
func (t *HaplotypeTable) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

func (t *HaplotypeTable) Len() int {
	return len(t.names)
}

// Diplotype is an unordered pair of haplotypes merged into one record. The
// label is canonical ("H1/H2", ordered by star-allele number), Alleles holds
// the per-site merge of the two haplotypes, and CNV and Ranking are the sums
// of the pair's values. Diplotypes are immutable once generated.
type Diplotype struct {
	Label   string
	Alleles map[string]string
	CNV     int
	Ranking int
}

// ReferenceTable maps canonical diplotype labels to their records,
// preserving insertion order for the same reason HaplotypeTable does.
type ReferenceTable struct {
	labels  []string
	byLabel map[string]*Diplotype
}

func NewReferenceTable() *ReferenceTable {
	return &ReferenceTable{byLabel: make(map[string]*Diplotype)}
}

// Insert adds a diplotype. Label collisions can only arise from star-allele
// key collisions in a misbuilt catalog; the later record wins, but the
// overwrite is reported because it silently shrinks the table.
func (rt *ReferenceTable) Insert(d *Diplotype) {
	if _, ok := rt.byLabel[d.Label]; ok {
		log.Printf("diplotype: duplicate diplotype label %q overwrites an earlier record", d.Label)
	} else {
		rt.labels = append(rt.labels, d.Label)
	}
	rt.byLabel[d.Label] = d
}

func (rt *ReferenceTable) Get(label string) (*Diplotype, bool) {
	d, ok := rt.byLabel[label]
	return d, ok
}

// Labels returns the diplotype labels in insertion order.
func (rt *ReferenceTable) Labels() []string {
	labels := make([]string, len(rt.labels))
	copy(labels, rt.labels)
	return labels
}

func (rt *ReferenceTable) Len() int {
	return len(rt.labels)
}

// Sites returns the union of site ids present across all diplotypes, sorted
// for reproducibility. Useful when only the built table is at hand, e.g.
// after loading it from disk without the original Config.
func (rt *ReferenceTable) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, label := range rt.labels {
		for site := range rt.byLabel[label].Alleles {
			if !seen[site] {
				seen[site] = true
				sites = append(sites, site)
			}
		}
	}
	sort.Strings(sites)
	return sites
}
