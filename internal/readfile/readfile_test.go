package readfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadTextNormalizedFoldsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\r\nthree"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadTextNormalized(path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "one\ntwo\nthree" {
		t.Fatalf("ReadTextNormalized = %q", text)
	}
}

func TestReadLinesNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\nc"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLinesNormalized(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lines, []string{"a", "b", "c"}) {
		t.Fatalf("ReadLinesNormalized = %#v", lines)
	}
}

func TestReadTextNormalizedMissingFile(t *testing.T) {
	_, err := ReadTextNormalized(filepath.Join(t.TempDir(), "absent.txt"))
	if !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.swift")
	want := "var x = 1\nlet y = \"é\"\n"

	if err := WriteText(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadTextNormalized(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("round trip = %q, want %q", got, want)
	}
}
