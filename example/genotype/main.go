package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/carbocation/diplotype"
	"github.com/carbocation/pfx"

	_ "github.com/carbocation/genomisc/compileinfoprint"
)

func main() {
	tablePath := flag.String("table", "", "Filename of the SQLite reference table built by buildtable")
	vcfPath := flag.String("vcf", "", "Filename of the single-sample VCF to genotype (may be gzipped)")
	showAll := flag.Bool("all", false, "Print every consistent diplotype, not just the best-ranked call")
	flag.Parse()

	if *tablePath == "" || *vcfPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Both -table and -vcf are required")
	}

	table, meta, err := diplotype.LoadTable(*tablePath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Loaded", table.Len(), "diplotypes for", meta.Locus)

	obs, err := diplotype.ReadObservationFile(*vcfPath, meta.Locus, table.Sites())
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Observed", len(obs.Genotypes), "of", len(table.Sites()), "catalog sites")

	if *showAll {
		results := diplotype.MatchAll(table, obs)
		if len(results) == 0 {
			fmt.Println("no match")
			return
		}
		for _, res := range results {
			fmt.Printf("%s\tranking=%d\tcnv=%d\n", diplotype.ShortLabel(res.Label, meta.Locus), res.Ranking, res.CNV)
		}
		return
	}

	best, ok := diplotype.Match(table, obs)
	if !ok {
		fmt.Println("no match")
		return
	}

	fmt.Printf("%s\tranking=%d\tcnv=%d", diplotype.ShortLabel(best.Label, meta.Locus), best.Ranking, best.CNV)
	if best.ObservedCNV != nil {
		fmt.Printf("\tobserved_cnv=%d", *best.ObservedCNV)
	}
	fmt.Println()
}
