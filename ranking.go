package diplotype

import "strings"

// Ranking tiers. Two is the most prevalent/confident class of haplotypes,
// zero the least. Diplotypes carry the sum of their two haplotypes' tiers,
// so a fully top-tier pair scores four.
const (
	RankOther      = 0
	RankSecondTier = 1
	RankTopTier    = 2
)

// AssignRanking sets the confidence tier on every haplotype. Rules are
// evaluated in priority order and the first one that applies wins:
// configured top-tier names, then multiplied (x2/x3) haplotypes, then
// configured second-tier names, then synthesized hybrid combinations,
// then everything else.
func AssignRanking(t *HaplotypeTable, cfg Config) *HaplotypeTable {
	topTier := stringSet(cfg.TopTier)
	secondTier := stringSet(cfg.SecondTier)

	for _, name := range t.Names() {
		h, _ := t.Get(name)

		switch {
		case topTier[name]:
			h.Ranking = RankTopTier
		case strings.HasSuffix(name, "x2"), strings.HasSuffix(name, "x3"):
			h.Ranking = RankTopTier
		case secondTier[name]:
			h.Ranking = RankSecondTier
		case strings.Contains(name, CombinationSeparator):
			h.Ranking = RankSecondTier
		default:
			h.Ranking = RankOther
		}
	}

	return t
}
