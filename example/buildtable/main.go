package main

import (
	"flag"
	"log"

	"github.com/carbocation/diplotype"
	"github.com/carbocation/pfx"

	_ "github.com/carbocation/genomisc/compileinfoprint"
)

func main() {
	tsvPath := flag.String("tsv", "", "Filename of the PharmVar-style haplotype TSV to process (may be gzipped)")
	configPath := flag.String("config", "", "Optional YAML locus definition; defaults to the built-in CYP2D6 locus")
	outPath := flag.String("out", "", "Filename for the SQLite reference table to create")
	flag.Parse()

	if *tsvPath == "" || *outPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Both -tsv and -out are required")
	}

	cfg := diplotype.CYP2D6()
	if *configPath != "" {
		var err error
		cfg, err = diplotype.LoadConfig(*configPath)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
	}

	records, err := diplotype.ReadVariantRecordsFile(*tsvPath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Read", len(records), "variant records for locus", cfg.Locus)

	haplotypes, err := diplotype.AnnotatedHaplotypes(records, cfg)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	table := diplotype.PairHaplotypes(haplotypes)
	log.Println("Built", table.Len(), "diplotypes from", haplotypes.Len(), "haplotypes")

	if err := diplotype.SaveTable(*outPath, table, cfg.Locus, haplotypes.Len()); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Saved reference table to", *outPath, "using the", diplotype.WhichSQLiteDriver(), "driver")
}
