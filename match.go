package diplotype

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// SampleObservation is one sample's observed calls at the locus: per-site
// genotype strings in "A/B" form (order-insensitive; a bare "A" counts as
// homozygous A/A), plus an optional observed copy-number value. The CNV is
// descriptive only and never filters matching; it is echoed on the result
// so callers can compare it against the table's CNV themselves.
type SampleObservation struct {
	Genotypes map[string]string
	CNV       *int
}

// MatchResult is one diplotype that is consistent with an observation.
type MatchResult struct {
	Label       string
	Ranking     int
	CNV         int
	ObservedCNV *int

	// Overlap counts the sites the comparison was actually based on. Zero
	// means the match was vacuous: the observation shared no sites with the
	// table and every diplotype matched trivially.
	Overlap int
}

// MatchAll returns every diplotype whose merged alleles agree with the
// observation at all shared sites, ordered by Ranking descending. The sort
// is stable, so equally ranked matches keep the table's insertion order.
// Observation values that cannot be parsed are reported and skipped rather
// than failing the whole query.
func MatchAll(rt *ReferenceTable, obs SampleObservation) []*MatchResult {
	wanted := normalizeObservation(obs)

	var results []*MatchResult
	for _, label := range rt.Labels() {
		d, _ := rt.Get(label)

		overlap := 0
		matched := true
		for site, key := range wanted {
			merged, ok := d.Alleles[site]
			if !ok {
				continue
			}
			mergedKey, err := alleleKey(merged)
			if err != nil {
				matched = false
				break
			}
			overlap++
			if mergedKey != key {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		results = append(results, &MatchResult{
			Label:       d.Label,
			Ranking:     d.Ranking,
			CNV:         d.CNV,
			ObservedCNV: obs.CNV,
			Overlap:     overlap,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Ranking > results[j].Ranking
	})

	return results
}

// Match returns the best-supported diplotype for the observation: the
// highest-ranked match, ties broken by table insertion order. The second
// return value is false when nothing matches, which is a normal outcome for
// an observation outside the known catalog, not an error.
func Match(rt *ReferenceTable, obs SampleObservation) (*MatchResult, bool) {
	results := MatchAll(rt, obs)
	if len(results) == 0 {
		return nil, false
	}

	best := results[0]
	if best.Overlap == 0 {
		log.Printf("diplotype: match %q shares no sites with the observation; the call is unconstrained", best.Label)
	}

	return best, true
}

// normalizeObservation canonicalizes each observed genotype into a sortable
// allele key, dropping (and reporting) values it cannot parse so that noisy
// rows degrade a query instead of killing it.
func normalizeObservation(obs SampleObservation) map[string]string {
	wanted := make(map[string]string, len(obs.Genotypes))
	for site, genotype := range obs.Genotypes {
		key, err := alleleKey(genotype)
		if err != nil {
			log.Printf("diplotype: skipping observed site %s: %v", site, err)
			continue
		}
		wanted[site] = key
	}
	return wanted
}

// alleleKey canonicalizes a "/"-joined allele string into an order-free key:
// alleles are split, a lone allele is doubled to its homozygous pair, and
// the result is sorted and rejoined. "T/G", "G/T", and a merged table value
// of "G/T" all produce the same key; a table value of "A" and an observed
// "A/A" agree.
func alleleKey(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty allele value")
	}

	parts := strings.Split(value, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return "", fmt.Errorf("malformed allele value %q", value)
		}
	}

	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	sort.Strings(parts)

	return strings.Join(parts, "/"), nil
}

// ShortLabel strips a redundant locus prefix from the second member of a
// diplotype label for reporting: CYP2D6*1/CYP2D6*4 becomes CYP2D6*1/*4.
// Hybrid names joined with "+" inside a single member keep their prefixes,
// so CYP2D6*1/CYP2D6*68+CYP2D6*4 becomes CYP2D6*1/*68+CYP2D6*4.
func ShortLabel(label, locus string) string {
	slash := strings.Index(label, "/")
	if slash < 0 || locus == "" {
		return label
	}

	head, tail := label[:slash], label[slash+1:]
	if strings.HasPrefix(tail, locus+"*") {
		tail = strings.TrimPrefix(tail, locus)
	}

	return head + "/" + tail
}
