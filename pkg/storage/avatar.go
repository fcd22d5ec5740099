package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// AvatarStorage defines the contract for persisting uploaded avatar images.
type AvatarStorage interface {
	// Save writes the avatar to the backing store and returns the stored
	// filename. The name is unique per user even for uploads landing in
	// the same second.
	Save(userID uint, originalName string, r io.Reader) (string, error)
}

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedExtension reports whether the filename carries an accepted image
// extension. The check is case-insensitive.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path components and replaces characters that
// are unsafe in a filename.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	return base
}

type diskStorage struct {
	dir string
	now func() time.Time
}

// NewDiskStorage returns an AvatarStorage persisting files under dir,
// creating it on first write if absent.
func NewDiskStorage(dir string) AvatarStorage {
	return &diskStorage{dir: dir, now: time.Now}
}

// NewDiskStorageWithClock is like NewDiskStorage with an injectable clock.
func NewDiskStorageWithClock(dir string, now func() time.Time) AvatarStorage {
	return &diskStorage{dir: dir, now: now}
}

func (s *diskStorage) Save(userID uint, originalName string, r io.Reader) (string, error) {
	sanitized := SanitizeFilename(originalName)
	if sanitized == "" {
		return "", errors.New("filename is empty after sanitization")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create avatar directory: %w", err)
	}

	ts := s.now().Unix()
	name := fmt.Sprintf("%d_%d_%s", userID, ts, sanitized)

	// O_EXCL guards against a second upload in the same second silently
	// overwriting the first.
	for i := 1; ; i++ {
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			if _, err := io.Copy(f, r); err != nil {
				f.Close()
				os.Remove(filepath.Join(s.dir, name))
				return "", fmt.Errorf("failed to write avatar file: %w", err)
			}
			if err := f.Close(); err != nil {
				return "", fmt.Errorf("failed to close avatar file: %w", err)
			}
			return name, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("failed to create avatar file: %w", err)
		}
		name = fmt.Sprintf("%d_%d_%d_%s", userID, ts, i, sanitized)
	}
}
