package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempRoot(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return s
}

func TestWriteAndRead(t *testing.T) {
	s := tempRoot(t)
	content := []byte("# Hello\nWorld\n")
	if err := s.Write("note.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("note.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteCreatesSubdirs(t *testing.T) {
	s := tempRoot(t)
	if err := s.Write("a/b/c.md", []byte("deep")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("a/b/c.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "deep" {
		t.Errorf("content = %q", got)
	}
}

func TestCopyAndOpen(t *testing.T) {
	s := tempRoot(t)
	if err := s.Copy("img/x/photo.png", strings.NewReader("PNGDATA")); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	rc, err := s.Open("img/x/photo.png")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "PNGDATA" {
		t.Errorf("content = %q", got)
	}
	info, err := s.Stat("img/x/photo.png")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("perm = %v, want 0644", info.Mode().Perm())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestCopyFailureLeavesNothing(t *testing.T) {
	s := tempRoot(t)
	if err := s.Copy("out.png", failingReader{}); err == nil {
		t.Fatal("expected copy error")
	}
	if _, err := s.Stat("out.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("destination should not exist, stat err = %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(s.root, ".notepress-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestList(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("blog/b.md", []byte("b"))
	_ = s.Write("blog/a.md", []byte("a"))
	_ = s.Write("blog/sub/c.md", []byte("nested"))
	_ = s.Write("blog/readme.txt", []byte("not md"))
	_ = s.MkdirAll("blog/dir.md")

	items, err := s.List("blog", ".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(items), items)
	}
	if items[0].Name != "a.md" || items[1].Name != "b.md" {
		t.Errorf("names = %q, %q; want sorted [a.md b.md]", items[0].Name, items[1].Name)
	}
	if items[0].Path != filepath.Join("blog", "a.md") {
		t.Errorf("path = %q", items[0].Path)
	}
}

func TestList_MissingDir(t *testing.T) {
	s := tempRoot(t)
	if _, err := s.List("nope", ".md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempRoot(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.md",
		"a/../../outside.md",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
	}
}

func TestLeadingSlashIsRootRelative(t *testing.T) {
	s := tempRoot(t)
	if err := s.Write("/inside.md", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.root, "inside.md")); err != nil {
		t.Errorf("expected file under root: %v", err)
	}
}

func TestAtomicWriteNoCorruption(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("atomic.md", []byte("original content"))

	updated := []byte("updated content")
	if err := s.Write("atomic.md", updated); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("atomic.md")
	if string(got) != string(updated) {
		t.Errorf("expected updated content, got %q", got)
	}

	matches, _ := filepath.Glob(filepath.Join(s.root, ".notepress-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "notepress-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
