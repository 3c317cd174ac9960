package dump_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stackslice/stackslice/internal/dump"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Posts.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return path
}

func TestReaderStreamsRows(t *testing.T) {
	path := writeFile(t, `<?xml version="1.0" encoding="utf-8"?>
<posts>
  <row Id="1" PostTypeId="1" Score="5" />
  <row Id="2" Title="second &amp; best" />
  <row Id="3" />
</posts>
`)

	r, err := dump.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	var rows []dump.Row

	for {
		row, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}

		rows = append(rows, row)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if got := rows[0].Get("Score"); got != "5" {
		t.Errorf("rows[0] Score = %q, want %q", got, "5")
	}

	if got := rows[1].Get("Title"); got != "second & best" {
		t.Errorf("rows[1] Title = %q, want %q", got, "second & best")
	}

	// Absent attribute reads as empty, same as an empty attribute.
	if got := rows[2].Get("Score"); got != "" {
		t.Errorf("rows[2] Score = %q, want empty", got)
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := dump.Open(filepath.Join(t.TempDir(), "Users.xml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Open on missing file: got %v, want fs.ErrNotExist", err)
	}
}

func TestReaderMalformedDocument(t *testing.T) {
	path := writeFile(t, `<posts><row Id="1" /><row Id=`)

	r, err := dump.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err != nil {
		t.Fatalf("first row: %v", err)
	}

	_, err = r.Next()
	if err == nil || err == io.EOF {
		t.Fatalf("malformed document: got %v, want a decoder error", err)
	}
}

func TestReaderIgnoresNonRowContent(t *testing.T) {
	path := writeFile(t, `<posts>
  <!-- export header -->
  <meta generated="2024-01-01" />
  <row Id="1"><extra>ignored</extra></row>
</posts>
`)

	r, err := dump.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	row, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}

	if got := row.Get("Id"); got != "1" {
		t.Errorf("Id = %q, want %q", got, "1")
	}

	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("after last row: got %v, want io.EOF", err)
	}
}
