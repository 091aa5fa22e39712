package diplotype

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// VCF column positions per the fixed part of the format.
const (
	vcfID     = 2
	vcfRef    = 3
	vcfAlt    = 4
	vcfFormat = 8
	vcfSample = 9
)

// ReadObservation extracts a SampleObservation from a single-sample VCF
// stream. This is deliberately not a general VCF reader: it keeps only rows
// whose ID is in the site catalog, resolves each GT index through REF and
// ALT into allele letters joined with "/", and reads an optional copy-number
// row identified as "<locus>_CNV". Rows it cannot parse are reported and
// skipped so that noisy caller output still yields a best-effort
// observation.
func ReadObservation(r io.Reader, locus string, sites []string) (SampleObservation, error) {
	obs := SampleObservation{Genotypes: make(map[string]string, len(sites))}
	wanted := stringSet(sites)
	cnvID := locus + "_CNV"

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	sawHeader := false
	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Text()

		if strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "#CHROM") {
			sawHeader = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sawHeader {
			return obs, pfx.Err(fmt.Errorf("data row %d before #CHROM header", row))
		}

		fields := strings.Split(line, "\t")
		if len(fields) <= vcfSample {
			log.Printf("diplotype: vcf row %d has no sample column; skipped", row)
			continue
		}

		id := fields[vcfID]

		if id == cnvID {
			cnv, err := strconv.Atoi(strings.TrimSpace(fields[vcfSample]))
			if err != nil {
				log.Printf("diplotype: vcf row %d: unparsable %s value %q; skipped", row, cnvID, fields[vcfSample])
				continue
			}
			obs.CNV = &cnv
			continue
		}

		if !wanted[id] {
			continue
		}

		genotype, err := genotypeFromRow(fields)
		if err != nil {
			log.Printf("diplotype: vcf row %d (%s): %v; skipped", row, id, err)
			continue
		}
		obs.Genotypes[id] = genotype
	}
	if err := scanner.Err(); err != nil {
		return obs, pfx.Err(err)
	}
	if !sawHeader {
		return obs, pfx.Err(fmt.Errorf("no #CHROM header found"))
	}

	return obs, nil
}

// genotypeFromRow converts one VCF data row's GT call into allele letters:
// GT indices are resolved against [REF, ALT...] and joined with "/". Phased
// separators are treated as unphased; non-numeric GT entries (".") are
// dropped, and a call with no numeric entry at all is an error.
func genotypeFromRow(fields []string) (string, error) {
	gtIndex := -1
	for i, key := range strings.Split(fields[vcfFormat], ":") {
		if key == "GT" {
			gtIndex = i
			break
		}
	}
	if gtIndex < 0 {
		return "", fmt.Errorf("FORMAT %q has no GT field", fields[vcfFormat])
	}

	sample := strings.Split(fields[vcfSample], ":")
	if gtIndex >= len(sample) {
		return "", fmt.Errorf("sample %q is shorter than FORMAT", fields[vcfSample])
	}

	alleles := append([]string{fields[vcfRef]}, strings.Split(fields[vcfAlt], ",")...)

	var called []string
	gt := strings.ReplaceAll(sample[gtIndex], "|", "/")
	for _, index := range strings.Split(gt, "/") {
		n, err := strconv.Atoi(index)
		if err != nil {
			continue
		}
		if n < 0 || n >= len(alleles) {
			return "", fmt.Errorf("GT index %d outside REF/ALT of width %d", n, len(alleles))
		}
		called = append(called, alleles[n])
	}
	if len(called) == 0 {
		return "", fmt.Errorf("GT %q carries no numeric call", sample[gtIndex])
	}

	return strings.Join(called, "/"), nil
}

// ReadObservationFile reads a sample VCF from disk, gzipped or plain.
func ReadObservationFile(path, locus string, sites []string) (SampleObservation, error) {
	r, err := openMaybeGzip(path)
	if err != nil {
		return SampleObservation{}, pfx.Err(err)
	}
	defer r.Close()

	obs, err := ReadObservation(r, locus, sites)
	if err != nil {
		return obs, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return obs, nil
}
