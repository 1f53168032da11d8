package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"devfolio/internal/common"
)

// formFile builds a real multipart upload and parses it back, so Save sees
// the same file/header pair the handler would.
func formFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	file, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parsing form file: %v", err)
	}
	return file, header
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	return len(entries)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	file, header := formFile(t, "notes.txt", []byte("plain text"))
	defer file.Close()

	if _, err := store.Save(file, header); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error for .txt, got %v", err)
	}
	if n := dirEntries(t, dir); n != 0 {
		t.Errorf("rejected upload left %d file(s) on disk", n)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, 16)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	file, header := formFile(t, "big.png", bytes.Repeat([]byte("x"), 64))
	defer file.Close()

	if _, err := store.Save(file, header); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error for oversized file, got %v", err)
	}
	if n := dirEntries(t, dir); n != 0 {
		t.Errorf("rejected upload left %d file(s) on disk", n)
	}
}

func TestSaveStoresFileAndReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	file, header := formFile(t, "My Avatar!.PNG", []byte("fake image bytes"))
	defer file.Close()

	url, err := store.Save(file, header)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("expected url under /uploads/, got %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("expected lowercased extension, got %q", url)
	}
	if !strings.Contains(url, "my-avatar") {
		t.Errorf("expected slugified base name, got %q", url)
	}
	if n := dirEntries(t, dir); n != 1 {
		t.Fatalf("expected one stored file, got %d", n)
	}
}

func TestSaveFilenamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, 1024)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		file, header := formFile(t, "same.png", []byte("same bytes"))
		url, err := store.Save(file, header)
		file.Close()
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if seen[url] {
			t.Fatalf("duplicate url %q", url)
		}
		seen[url] = true
	}
}
