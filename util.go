package diplotype

import (
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// WhichSQLiteDriver reports which SQLite driver the build selected for
// reference-table persistence (the cgo sqlite3 driver when available,
// otherwise the pure-Go driver).
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}

// openMaybeGzip opens a local file, transparently decompressing it when the
// name carries a .gz suffix. PharmVar exports and sample VCFs are routinely
// shipped gzipped.
func openMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	return &gzipReadCloser{gz: gz, file: f}, nil
}

// gzipReadCloser closes both the gzip stream and the file beneath it.
type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.gz.Read(p)
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.gz.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}
