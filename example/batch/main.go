package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/carbocation/diplotype"
	"github.com/carbocation/pfx"
	"golang.org/x/sync/errgroup"

	_ "github.com/carbocation/genomisc/compileinfoprint"
)

// Genotypes many sample VCFs against one stored reference table. The table
// is loaded once and only read afterwards, so the samples can be matched
// concurrently without coordination.
func main() {
	tablePath := flag.String("table", "", "Filename of the SQLite reference table built by buildtable")
	flag.Parse()

	if *tablePath == "" || flag.NArg() == 0 {
		flag.PrintDefaults()
		log.Fatalln("Usage: batch -table ref.sqlite sample1.vcf [sample2.vcf ...]")
	}

	table, meta, err := diplotype.LoadTable(*tablePath)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	sites := table.Sites()

	var mu sync.Mutex
	calls := make(map[string]string, flag.NArg())

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	for _, vcfPath := range flag.Args() {
		vcfPath := vcfPath
		g.Go(func() error {
			obs, err := diplotype.ReadObservationFile(vcfPath, meta.Locus, sites)
			if err != nil {
				return err
			}

			call := "no match"
			if best, ok := diplotype.Match(table, obs); ok {
				call = fmt.Sprintf("%s\tranking=%d\tcnv=%d", diplotype.ShortLabel(best.Label, meta.Locus), best.Ranking, best.CNV)
			}

			mu.Lock()
			calls[vcfPath] = call
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	for _, vcfPath := range flag.Args() {
		fmt.Printf("%s\t%s\n", vcfPath, calls[vcfPath])
	}
}
