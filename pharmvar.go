package diplotype

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/carbocation/pfx"
)

// Column headers expected in PharmVar-style haplotype TSV exports.
const (
	colHaplotypeName   = "Haplotype Name"
	colRSID            = "rsID"
	colReferenceAllele = "Reference Allele"
	colVariantAllele   = "Variant Allele"
)

// ReadVariantRecords parses a PharmVar-style haplotype TSV into the raw
// variant records the table builder consumes. Leading lines starting with
// '#' (version banners, comments) are skipped; the first remaining line must
// be a header naming the four expected columns. Data rows too short to
// carry all located columns are reported and skipped.
func ReadVariantRecords(r io.Reader) ([]VariantRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		header = strings.Split(line, "\t")
		break
	}
	if header == nil {
		return nil, pfx.Err(fmt.Errorf("no header row found"))
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colHaplotypeName, colRSID, colReferenceAllele, colVariantAllele} {
		if _, ok := idx[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("header is missing required column %q", required))
		}
	}

	width := idx[colHaplotypeName]
	for _, required := range []string{colRSID, colReferenceAllele, colVariantAllele} {
		if idx[required] > width {
			width = idx[required]
		}
	}

	var records []VariantRecord
	row := 1
	for scanner.Scan() {
		row++
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) <= width {
			log.Printf("diplotype: skipping row %d: %d columns, need at least %d", row, len(fields), width+1)
			continue
		}

		records = append(records, VariantRecord{
			Haplotype: strings.TrimSpace(fields[idx[colHaplotypeName]]),
			Site:      strings.TrimSpace(fields[idx[colRSID]]),
			Reference: strings.TrimSpace(fields[idx[colReferenceAllele]]),
			Variant:   strings.TrimSpace(fields[idx[colVariantAllele]]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}

// ReadVariantRecordsFile reads a haplotype TSV from disk, gzipped or plain.
func ReadVariantRecordsFile(path string) ([]VariantRecord, error) {
	r, err := openMaybeGzip(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	records, err := ReadVariantRecords(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return records, nil
}
