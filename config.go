package diplotype

import (
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v2"
)

// Config describes one locus: the ordered site catalog that matters for
// genotyping and the literal domain rules (hybrid combinations, CNV
// exceptions and overrides, multiplication lists, ranking tiers) that drive
// reference-table construction. CYP2D6() returns the built-in default;
// LoadConfig reads a locus definition from a YAML file in the same shape.
type Config struct {
	// Locus is the gene name that prefixes haplotype names, e.g. CYP2D6.
	Locus string `yaml:"locus"`

	// Sites is the ordered catalog of variant site ids (rsIDs) retained for
	// this locus. Records at other sites are ignored.
	Sites []string `yaml:"sites"`

	// ReferenceHaplotype carries no variants; DeletionHaplotype is the
	// whole-gene deletion. Both always exist in the built table.
	ReferenceHaplotype string `yaml:"reference_haplotype"`
	DeletionHaplotype  string `yaml:"deletion_haplotype"`

	// Combinations are ordered tuples of haplotype names synthesized into
	// hybrid haplotypes named by joining the members with "+".
	Combinations [][]string `yaml:"combinations"`

	// CNVExceptions are haplotypes whose copy number is zero; CNVOverrides
	// pin explicit copy numbers (usually for hybrid combinations) and win
	// over the exception list.
	CNVExceptions []string       `yaml:"cnv_exceptions"`
	CNVOverrides  map[string]int `yaml:"cnv_overrides"`

	// Duplications and Triplications name the haplotypes that occur with
	// increased copy number and get derived x2/x3 entries.
	Duplications  []string `yaml:"duplications"`
	Triplications []string `yaml:"triplications"`

	// TopTier and SecondTier assign prevalence-based confidence tiers.
	TopTier    []string `yaml:"top_tier"`
	SecondTier []string `yaml:"second_tier"`
}

// LoadConfig reads and validates a YAML locus definition.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, pfx.Err(err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, pfx.Err(err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, pfx.Err(err)
	}

	return cfg, nil
}

// Validate rejects configurations that would build an incomplete or
// ambiguous reference table. These are construction-time failures: a table
// silently built from bad configuration would be clinically wrong, which is
// worse than no table.
func (cfg Config) Validate() error {
	if len(cfg.Sites) == 0 {
		return fmt.Errorf("config: site catalog is empty")
	}

	seen := make(map[string]bool, len(cfg.Sites))
	for _, site := range cfg.Sites {
		if strings.TrimSpace(site) == "" {
			return fmt.Errorf("config: site catalog contains a blank site id")
		}
		if seen[site] {
			return fmt.Errorf("config: site %s appears twice in the catalog", site)
		}
		seen[site] = true
	}

	if cfg.ReferenceHaplotype == "" {
		return fmt.Errorf("config: reference haplotype name is required")
	}
	if cfg.DeletionHaplotype == "" {
		return fmt.Errorf("config: deletion haplotype name is required")
	}

	for _, combo := range cfg.Combinations {
		if len(combo) == 0 {
			return fmt.Errorf("config: empty combination tuple")
		}
		for _, member := range combo {
			if strings.TrimSpace(member) == "" {
				return fmt.Errorf("config: combination %v contains a blank member name", combo)
			}
		}
	}

	for name, cnv := range cfg.CNVOverrides {
		if cnv < 0 {
			return fmt.Errorf("config: CNV override for %s is negative", name)
		}
	}

	return nil
}
