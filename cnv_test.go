package diplotype

import (
	"reflect"
	"testing"
)

func cnvFixture() *HaplotypeTable {
	table := NewHaplotypeTable()
	table.Add(&Haplotype{Name: "CYP2D6*1", Alleles: map[string]string{"rs1": "A"}})
	table.Add(&Haplotype{Name: "CYP2D6*5", Alleles: map[string]string{"rs1": "A"}})
	table.Add(&Haplotype{Name: "CYP2D6*36+CYP2D6*10", Alleles: map[string]string{"rs1": "T"}})
	return table
}

func TestAssignCNVDefaultsAndExceptions(t *testing.T) {
	cfg := testConfig()
	cfg.CNVExceptions = []string{"CYP2D6*5"}

	table := AssignCNV(cnvFixture(), cfg)

	one, _ := table.Get("CYP2D6*1")
	if one.CNV != 1 {
		t.Errorf("Got CNV %d for *1, expected default 1", one.CNV)
	}
	five, _ := table.Get("CYP2D6*5")
	if five.CNV != 0 {
		t.Errorf("Got CNV %d for the deletion, expected 0", five.CNV)
	}
}

func TestAssignCNVOverrideWinsOverException(t *testing.T) {
	cfg := testConfig()
	cfg.CNVExceptions = []string{"CYP2D6*36+CYP2D6*10"}
	cfg.CNVOverrides = map[string]int{"CYP2D6*36+CYP2D6*10": 1}

	table := AssignCNV(cnvFixture(), cfg)

	hybrid, _ := table.Get("CYP2D6*36+CYP2D6*10")
	if hybrid.CNV != 1 {
		t.Errorf("Got CNV %d, expected the override value 1", hybrid.CNV)
	}
}

func TestExpandCNVVariants(t *testing.T) {
	cfg := testConfig()
	cfg.Duplications = []string{"CYP2D6*1", "CYP2D6*999"}
	cfg.Triplications = []string{"CYP2D6*1"}

	table := AssignCNV(cnvFixture(), cfg)
	table = ExpandCNVVariants(table, cfg)

	dup, ok := table.Get("CYP2D6*1x2")
	if !ok {
		t.Fatal("duplication entry was not created")
	}
	if dup.CNV != 2 {
		t.Errorf("Got CNV %d for x2, expected 2", dup.CNV)
	}

	trip, ok := table.Get("CYP2D6*1x3")
	if !ok {
		t.Fatal("triplication entry was not created")
	}
	if trip.CNV != 3 {
		t.Errorf("Got CNV %d for x3, expected 3", trip.CNV)
	}

	source, _ := table.Get("CYP2D6*1")
	if source.CNV != 1 {
		t.Errorf("Got CNV %d for the source, expected it untouched at 1", source.CNV)
	}
	if !reflect.DeepEqual(dup.Alleles, source.Alleles) {
		t.Errorf("Got alleles %v for x2, expected a copy of %v", dup.Alleles, source.Alleles)
	}

	if _, ok := table.Get("CYP2D6*999x2"); ok {
		t.Error("duplication of a haplotype absent from the table should be skipped")
	}
}

func TestExpandCNVVariantsCopyIsIndependent(t *testing.T) {
	cfg := testConfig()
	cfg.Duplications = []string{"CYP2D6*1"}

	table := AssignCNV(cnvFixture(), cfg)
	table = ExpandCNVVariants(table, cfg)

	dup, _ := table.Get("CYP2D6*1x2")
	dup.Alleles["rs1"] = "Z"

	source, _ := table.Get("CYP2D6*1")
	if source.Alleles["rs1"] == "Z" {
		t.Error("mutating the derived haplotype must not touch the source")
	}
}
