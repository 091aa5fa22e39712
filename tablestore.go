package diplotype

import (
	"fmt"
	"sort"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// TableStore wraps the SQLite database that holds a serialized reference
// table so the expensive combinatorial construction runs once and samples
// can be genotyped against the stored table thereafter.
type TableStore struct {
	DB       *sqlx.DB
	Metadata *TableMetadata
}

func (s *TableStore) Close() error {
	return s.DB.Close()
}

// TableMetadata conforms to the data found in the single row of the
// "Metadata" table of a stored reference table.
type TableMetadata struct {
	Locus        string `db:"locus"`
	NHaplotypes  int    `db:"n_haplotypes"`
	NDiplotypes  int    `db:"n_diplotypes"`
	CreationTime Time   `db:"creation_time"`
}

// diplotypeRow conforms to the rows of the "Diplotype" table.
type diplotypeRow struct {
	Label   string `db:"label"`
	CNV     int    `db:"cnv"`
	Ranking int    `db:"ranking"`
}

// alleleRow conforms to the rows of the "Allele" table.
type alleleRow struct {
	Label  string `db:"label"`
	Site   string `db:"site"`
	Allele string `db:"allele"`
}

const tableSchema = `
CREATE TABLE IF NOT EXISTS Metadata (
	locus TEXT NOT NULL,
	n_haplotypes INTEGER NOT NULL,
	n_diplotypes INTEGER NOT NULL,
	creation_time INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS Diplotype (
	label TEXT PRIMARY KEY,
	cnv INTEGER NOT NULL,
	ranking INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS Allele (
	label TEXT NOT NULL,
	site TEXT NOT NULL,
	allele TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS AlleleLabel ON Allele (label);
`

// SaveTable writes a built reference table to a SQLite file at path.
// Diplotypes are inserted in the table's iteration order; rowid then
// preserves that order through LoadTable, so tie-break behavior survives a
// round-trip through disk. nHaplotypes is recorded in the metadata for
// sanity-checking against n(n+1)/2.
func SaveTable(path string, rt *ReferenceTable, locus string, nHaplotypes int) error {
	store, err := openTableStore(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer store.Close()

	if _, err := store.DB.Exec(tableSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := store.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.Exec(
		"INSERT INTO Metadata (locus, n_haplotypes, n_diplotypes, creation_time) VALUES (?, ?, ?, ?)",
		locus, nHaplotypes, rt.Len(), time.Now().Unix(),
	); err != nil {
		tx.Rollback()
		return pfx.Err(err)
	}

	for _, label := range rt.Labels() {
		d, _ := rt.Get(label)

		if _, err := tx.NamedExec(
			"INSERT INTO Diplotype (label, cnv, ranking) VALUES (:label, :cnv, :ranking)",
			diplotypeRow{Label: d.Label, CNV: d.CNV, Ranking: d.Ranking},
		); err != nil {
			tx.Rollback()
			return pfx.Err(err)
		}

		for _, site := range sortedSites(d.Alleles) {
			if _, err := tx.NamedExec(
				"INSERT INTO Allele (label, site, allele) VALUES (:label, :site, :allele)",
				alleleRow{Label: d.Label, Site: site, Allele: d.Alleles[site]},
			); err != nil {
				tx.Rollback()
				return pfx.Err(err)
			}
		}
	}

	return pfx.Err(tx.Commit())
}

// LoadTable reads a stored reference table back into memory, preserving the
// insertion order it was saved with.
func LoadTable(path string) (*ReferenceTable, *TableMetadata, error) {
	store, err := openTableStore(path)
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	defer store.Close()

	meta := &TableMetadata{}
	if err := store.DB.Get(meta, "SELECT * FROM Metadata LIMIT 1"); err != nil {
		return nil, nil, pfx.Err(fmt.Errorf("%s has no metadata: %w", path, err))
	}

	var rows []diplotypeRow
	if err := store.DB.Select(&rows, "SELECT label, cnv, ranking FROM Diplotype ORDER BY rowid"); err != nil {
		return nil, nil, pfx.Err(err)
	}

	var alleles []alleleRow
	if err := store.DB.Select(&alleles, "SELECT label, site, allele FROM Allele ORDER BY rowid"); err != nil {
		return nil, nil, pfx.Err(err)
	}

	bySite := make(map[string]map[string]string, len(rows))
	for _, a := range alleles {
		if bySite[a.Label] == nil {
			bySite[a.Label] = make(map[string]string)
		}
		bySite[a.Label][a.Site] = a.Allele
	}

	rt := NewReferenceTable()
	for _, row := range rows {
		rt.Insert(&Diplotype{
			Label:   row.Label,
			Alleles: bySite[row.Label],
			CNV:     row.CNV,
			Ranking: row.Ranking,
		})
	}

	return rt, meta, nil
}

func sortedSites(alleles map[string]string) []string {
	sites := make([]string, 0, len(alleles))
	for site := range alleles {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites
}
