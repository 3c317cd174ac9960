// Package dump reads Stack Exchange data dump files: one XML document per
// entity type, whose payload is carried entirely in the attributes of flat
// <row/> elements under a single root.
//
// The reader is a forward-only token stream. Nothing of the document tree is
// retained between rows, so peak memory is bounded by the consumer's batch
// size rather than the file size.
package dump

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"os"
)

// readBufferSize is the buffered-read window over the dump file.
const readBufferSize = 1 << 20

// Row is the attribute set of one <row/> element. Optional attributes are
// simply absent from the map.
type Row map[string]string

// Get returns the named attribute, or "" when absent. The coercion layer
// maps "" to NULL, so absent and empty attributes behave identically.
func (r Row) Get(name string) string { return r[name] }

// Reader streams rows from one dump file.
type Reader struct {
	f   *os.File
	dec *xml.Decoder
}

// Open opens a dump file for streaming. A missing file is reported as an
// error satisfying errors.Is(err, fs.ErrNotExist); callers treat that as an
// absent optional entity type, not a failure.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Reader{
		f:   f,
		dec: xml.NewDecoder(bufio.NewReaderSize(f, readBufferSize)),
	}, nil
}

// Next returns the next row element's attributes. It returns io.EOF at the
// end of the document and the decoder's error for malformed XML, which is
// fatal for the entity type being imported. Elements other than <row> are
// passed over; nested content inside a row is skipped, never consumed.
func (r *Reader) Next() (Row, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "row" {
			continue
		}

		row := make(Row, len(start.Attr))
		for _, attr := range start.Attr {
			row[attr.Name.Local] = attr.Value
		}

		if err := r.dec.Skip(); err != nil {
			return nil, fmt.Errorf("closing row element: %w", err)
		}

		return row, nil
	}
}

// Close releases the underlying file.
func (r *Reader) Close() error { return r.f.Close() }
