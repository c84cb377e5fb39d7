package stream

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestSniffFormat(t *testing.T) {
	cases := map[string]Format{
		"lot.stdf":      FormatPlain,
		"lot.STDF":      FormatPlain,
		"lot.stdf.gz":   FormatGzip,
		"lot.stdf.GZ":   FormatGzip,
		"lot.stdf.bz2":  FormatBzip2,
		"lot.stdf.bz":   FormatBzip2,
		"lot.stdf.zip":  FormatZip,
		"lot.stdf.zst":  FormatZstd,
		"lot.stdf.zstd": FormatZstd,
		"lot":           FormatPlain,
	}
	for name, want := range cases {
		if got := SniffFormat(name); got != want {
			t.Errorf("SniffFormat(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatGzip.String() != "gzip" {
		t.Fatalf("want %q, got %q", "gzip", FormatGzip.String())
	}
}

func TestPlainRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lot.stdf")
	want := []byte("FARrecordbytes")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.Format() != FormatPlain {
		t.Fatalf("want FormatPlain, got %v", r.Format())
	}

	got := make([]byte, len(want))
	if err := r.ReadFull(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestGzipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lot.stdf.gz")
	want := []byte("FARrecordbytescompressed")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.Format() != FormatGzip {
		t.Fatalf("want FormatGzip, got %v", r.Format())
	}

	got := make([]byte, len(want))
	if err := r.ReadFull(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestReadFullReportsEOFOnEmptyRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.stdf")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if err := r.ReadFull(make([]byte, 4)); err != ErrEOF {
		t.Fatalf("want ErrEOF, got %v", err)
	}
}

func TestReadFullReportsTruncated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.stdf")
	if err := os.WriteFile(path, []byte{1, 2}, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	err = r.ReadFull(make([]byte, 4))
	if err == nil {
		t.Fatal("want an error for a truncated read")
	}
}

func TestReopenRestartsFromBeginning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lot.stdf")
	want := []byte("0123456789")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	first := make([]byte, 4)
	if err := r.ReadFull(first); err != nil {
		t.Fatal(err)
	}

	if err := r.Reopen(); err != nil {
		t.Fatal(err)
	}

	again := make([]byte, 4)
	if err := r.ReadFull(again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, again) {
		t.Fatalf("want Reopen to restart from the beginning: %q != %q", first, again)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/path/lot.stdf"); err == nil {
		t.Fatal("want an error opening a nonexistent file")
	}
}
