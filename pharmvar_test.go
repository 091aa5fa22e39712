package diplotype

import (
	"strings"
	"testing"
)

const samplePharmVarTSV = `#version=CYP2D6 test export
Haplotype Name	Gene	rsID	Reference Allele	Variant Allele
CYP2D6*2	CYP2D6	rs1	C	T
CYP2D6*2	CYP2D6	rs2	G	A
CYP2D6*4	CYP2D6	rs3	A	G
CYP2D6*4	CYP2D6
CYP2D6*10	CYP2D6	rs1	C	T
`

func TestReadVariantRecords(t *testing.T) {
	records, err := ReadVariantRecords(strings.NewReader(samplePharmVarTSV))
	if err != nil {
		t.Fatal(err)
	}

	// The short row carries no rsID columns and is skipped.
	if len(records) != 4 {
		t.Fatalf("Got %d records, expected 4", len(records))
	}

	want := VariantRecord{Haplotype: "CYP2D6*2", Site: "rs1", Reference: "C", Variant: "T"}
	if records[0] != want {
		t.Errorf("Got %+v, expected %+v", records[0], want)
	}
	if records[3].Haplotype != "CYP2D6*10" {
		t.Errorf("Got %q, expected CYP2D6*10", records[3].Haplotype)
	}
}

func TestReadVariantRecordsColumnOrderIndependent(t *testing.T) {
	tsv := "rsID\tVariant Allele\tReference Allele\tHaplotype Name\n" +
		"rs1\tT\tC\tCYP2D6*2\n"

	records, err := ReadVariantRecords(strings.NewReader(tsv))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("Got %d records, expected 1", len(records))
	}

	want := VariantRecord{Haplotype: "CYP2D6*2", Site: "rs1", Reference: "C", Variant: "T"}
	if records[0] != want {
		t.Errorf("Got %+v, expected %+v", records[0], want)
	}
}

func TestReadVariantRecordsMissingColumnFails(t *testing.T) {
	tsv := "Haplotype Name\trsID\tReference Allele\nCYP2D6*2\trs1\tC\n"
	if _, err := ReadVariantRecords(strings.NewReader(tsv)); err == nil {
		t.Error("expected an error for a header missing the Variant Allele column")
	}
}

func TestReadVariantRecordsEmptyInputFails(t *testing.T) {
	if _, err := ReadVariantRecords(strings.NewReader("")); err == nil {
		t.Error("expected an error for input with no header")
	}
	if _, err := ReadVariantRecords(strings.NewReader("# only comments\n")); err == nil {
		t.Error("expected an error for input with only comments")
	}
}
