package poeditor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExport(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/export", map[string]any{
		"url": "https://api.poeditor.com/v2/download/file/abc123",
	})

	url, err := c.Export(context.Background(), 4536, "fr", ExportOptions{
		FileType: FileTypePO,
		Filters:  []Filter{FilterTranslated, FilterNotFuzzy},
		Tags:     []string{"menu"},
		Order:    "terms",
	})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if url != "https://api.poeditor.com/v2/download/file/abc123" {
		t.Errorf("url = %q", url)
	}

	form := srv.LastCall().Form
	if form.Get("type") != "po" || form.Get("language") != "fr" {
		t.Errorf("form = %v", form)
	}
	if form.Get("filters") != `["translated","not_fuzzy"]` {
		t.Errorf("filters form field = %q", form.Get("filters"))
	}
	if form.Get("order") != "terms" {
		t.Errorf("order form field = %q", form.Get("order"))
	}
}

func TestExportRejectsUnknownFileType(t *testing.T) {
	c, srv := newTestPair(t)

	_, err := c.Export(context.Background(), 4536, "fr", ExportOptions{FileType: "docx"})
	if !errors.Is(err, ErrArgs) {
		t.Fatalf("error = %v, want ErrArgs", err)
	}
	if n := len(srv.Calls()); n != 0 {
		t.Errorf("server saw %d calls, want 0", n)
	}
}

func TestExportRejectsUnknownFilter(t *testing.T) {
	c, _ := newTestPair(t)

	_, err := c.Export(context.Background(), 4536, "fr", ExportOptions{
		FileType: FileTypePO,
		Filters:  []Filter{"reviewed"},
	})
	if !errors.Is(err, ErrArgs) {
		t.Fatalf("error = %v, want ErrArgs", err)
	}
}

func TestExportMissingURL(t *testing.T) {
	c, srv := newTestPair(t)
	srv.Handle("projects/export", map[string]any{})

	_, err := c.Export(context.Background(), 4536, "fr", ExportOptions{FileType: FileTypePO})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
}

func TestDownloadExport(t *testing.T) {
	c, srv := newTestPair(t)
	content := []byte("msgid \"Welcome\"\nmsgstr \"Bienvenue\"\n")
	url := srv.ServeExport("fr.po", content)

	var buf bytes.Buffer
	if err := c.DownloadExport(context.Background(), url, &buf); err != nil {
		t.Fatalf("DownloadExport() error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), content) {
		t.Errorf("downloaded %q, want %q", buf.Bytes(), content)
	}
}

func TestDownloadExportExpiredURL(t *testing.T) {
	c, srv := newTestPair(t)

	var buf bytes.Buffer
	err := c.DownloadExport(context.Background(), srv.URL+"/exports/gone.po", &buf)
	if !errors.Is(err, ErrRequest) {
		t.Fatalf("error = %v, want ErrRequest", err)
	}
}

func TestExportToFile(t *testing.T) {
	c, srv := newTestPair(t)
	content := []byte("key = value\n")
	url := srv.ServeExport("fr.properties", content)
	srv.Handle("projects/export", map[string]any{"url": url})

	path := filepath.Join(t.TempDir(), "fr.properties")
	got, err := c.ExportToFile(context.Background(), 4536, "fr", ExportOptions{FileType: FileTypeProperties}, path)
	if err != nil {
		t.Fatalf("ExportToFile() error: %v", err)
	}
	if got != url {
		t.Errorf("url = %q, want %q", got, url)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, content) {
		t.Errorf("file content = %q, want %q", written, content)
	}
}
