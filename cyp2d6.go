package diplotype

// CYP2D6 returns the built-in locus definition for CYP2D6. The site catalog
// covers the core star-allele-defining positions; the hybrid combinations
// and exon-9 CNV rules follow the PharmVar structural-variation notes, and
// the tiers follow reported allele frequencies (top tier: the common
// alleles; multiplications are always top tier, hybrids second tier).
func CYP2D6() Config {
	return Config{
		Locus: "CYP2D6",
		Sites: []string{
			"rs1065852",
			"rs5030655",
			"rs3892097",
			"rs5030656",
			"rs16947",
			"rs28371706",
			"rs28371725",
			"rs35742686",
			"rs5030865",
			"rs5030867",
			"rs59421388",
			"rs1135840",
		},
		ReferenceHaplotype: "CYP2D6*1",
		DeletionHaplotype:  "CYP2D6*5",
		Combinations: [][]string{
			{"CYP2D6*1", "CYP2D6*38"},
			{"CYP2D6*4.013", "CYP2D6*4"},
			{"CYP2D6*13", "CYP2D6*1"},
			{"CYP2D6*13", "CYP2D6*2"},
			{"CYP2D6*13", "CYP2D6*68", "CYP2D6*4"},
			{"CYP2D6*17", "CYP2D6*17"},
			{"CYP2D6*36", "CYP2D6*10"},
			{"CYP2D6*36", "CYP2D6*10.007"},
			{"CYP2D6*36.004", "CYP2D6*10.002"},
			{"CYP2D6*57", "CYP2D6*10"},
			{"CYP2D6*68", "CYP2D6*2"},
			{"CYP2D6*68", "CYP2D6*4"},
			{"CYP2D6*1", "CYP2D6*90"},
		},
		CNVExceptions: []string{
			"CYP2D6*4.013", "CYP2D6*4.031", "CYP2D6*36", "CYP2D6*36.001",
			"CYP2D6*36.002", "CYP2D6*36.003", "CYP2D6*36.004", "CYP2D6*36.005",
			"CYP2D6*83", "CYP2D6*83.001", "CYP2D6*83.0012", "CYP2D6*83.0013",
			"CYP2D6*141", "CYP2D6*141.001", "CYP2D6*5",
		},
		CNVOverrides: map[string]int{
			"CYP2D6*1+CYP2D6*38":           2,
			"CYP2D6*4.013+CYP2D6*4":        1,
			"CYP2D6*13+CYP2D6*1":           2,
			"CYP2D6*13+CYP2D6*2":           2,
			"CYP2D6*13+CYP2D6*68+CYP2D6*4": 3,
			"CYP2D6*17+CYP2D6*17":          2,
			"CYP2D6*36+CYP2D6*10":          1,
			"CYP2D6*36+CYP2D6*10.007":      1,
			"CYP2D6*36.004+CYP2D6*10.002":  1,
			"CYP2D6*57+CYP2D6*10":          2,
			"CYP2D6*68+CYP2D6*2":           2,
			"CYP2D6*68+CYP2D6*4":           2,
			"CYP2D6*1+CYP2D6*90":           2,
			"CYP2D6*28.001+CYP2D6*28.003":  2,
		},
		Duplications: []string{
			"CYP2D6*1", "CYP2D6*2", "CYP2D6*3", "CYP2D6*4", "CYP2D6*4.013",
			"CYP2D6*6", "CYP2D6*9", "CYP2D6*10", "CYP2D6*17", "CYP2D6*27.002",
			"CYP2D6*29", "CYP2D6*35", "CYP2D6*41", "CYP2D6*43", "CYP2D6*45",
			"CYP2D6*146.001",
		},
		Triplications: []string{
			"CYP2D6*1", "CYP2D6*2", "CYP2D6*4", "CYP2D6*41",
		},
		TopTier: []string{
			"CYP2D6*1", "CYP2D6*2", "CYP2D6*3", "CYP2D6*4", "CYP2D6*5",
			"CYP2D6*6", "CYP2D6*9", "CYP2D6*10", "CYP2D6*17", "CYP2D6*29",
			"CYP2D6*41",
		},
		SecondTier: []string{
			"CYP2D6*7", "CYP2D6*8", "CYP2D6*12", "CYP2D6*14", "CYP2D6*15",
			"CYP2D6*21", "CYP2D6*31", "CYP2D6*40", "CYP2D6*42", "CYP2D6*49",
			"CYP2D6*56", "CYP2D6*59",
		},
	}
}
