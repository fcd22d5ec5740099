package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestAllowedExtension(t *testing.T) {
	cases := map[string]bool{
		"photo.png":  true,
		"photo.jpg":  true,
		"photo.jpeg": true,
		"photo.gif":  true,
		"photo.PNG":  true,
		"photo.JPeG": true,
		"photo.exe":  false,
		"photo.svg":  false,
		"photo":      false,
		"":           false,
	}

	for name, want := range cases {
		if got := AllowedExtension(name); got != want {
			t.Errorf("AllowedExtension(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":           "photo.png",
		"../../../etc/passwd": "passwd",
		"my photo.png":        "my_photo.png",
		"a/b/c.jpg":           "c.jpg",
		"..\\..\\evil.gif":    "evil.gif",
	}

	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveUsesNamingScheme(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := NewDiskStorageWithClock(dir, func() time.Time { return ts })

	name, err := store.Save(42, "photo.png", strings.NewReader("fake image"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	want := "42_" + formatUnix(ts) + "_photo.png"
	if name != want {
		t.Fatalf("stored name = %q, want %q", name, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake image" {
		t.Fatalf("stored content = %q", data)
	}
}

func TestSaveSameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := NewDiskStorageWithClock(dir, func() time.Time { return ts })

	first, err := store.Save(7, "photo.png", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second, err := store.Save(7, "photo.png", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct stored names, both were %q", first)
	}

	data, err := os.ReadFile(filepath.Join(dir, first))
	if err != nil {
		t.Fatalf("reading first file: %v", err)
	}
	if string(data) != "first" {
		t.Fatalf("first upload was overwritten: %q", data)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "avatars")
	store := NewDiskStorage(dir)

	if _, err := store.Save(1, "photo.gif", strings.NewReader("x")); err != nil {
		t.Fatalf("Save into missing directory failed: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("avatar directory was not created: %v", err)
	}
}

func formatUnix(ts time.Time) string {
	return strconv.FormatInt(ts.Unix(), 10)
}
