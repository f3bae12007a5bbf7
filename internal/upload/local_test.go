package upload

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalUploadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir)
	if err != nil {
		t.Fatalf("new local uploader: %v", err)
	}

	got, err := u.Upload(context.Background(), "resume.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(got, "file://") {
		t.Fatalf("url = %q, want file:// scheme", got)
	}
	if !strings.HasSuffix(got, "-resume.pdf") {
		t.Errorf("url = %q, want original name preserved", got)
	}

	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	data, err := os.ReadFile(filepath.FromSlash(parsed.Path))
	if err != nil {
		t.Fatalf("read uploaded file: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestLocalUploadUniqueNames(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	if err != nil {
		t.Fatalf("new local uploader: %v", err)
	}

	first, err := u.Upload(context.Background(), "a.txt", strings.NewReader("1"))
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := u.Upload(context.Background(), "a.txt", strings.NewReader("2"))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first == second {
		t.Error("same name uploads collided")
	}
}

func TestLocalUploadSanitizesPaths(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir)
	if err != nil {
		t.Fatalf("new local uploader: %v", err)
	}

	got, err := u.Upload(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	parsed, _ := url.Parse(got)
	rel, err := filepath.Rel(dir, filepath.FromSlash(parsed.Path))
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Errorf("upload escaped data dir: %q", parsed.Path)
	}
}

func TestFromEnvRejectsUnknownBackend(t *testing.T) {
	t.Setenv("PATHWISE_UPLOAD_BACKEND", "ftp")
	if _, err := FromEnv(context.Background(), t.TempDir()); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("PATHWISE_UPLOAD_BACKEND", "")
	u, err := FromEnv(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if _, ok := u.(*LocalUploader); !ok {
		t.Errorf("backend = %T, want *LocalUploader", u)
	}
}
