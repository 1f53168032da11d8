package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devfolio/internal/common"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Images only.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
}

// Store persists uploaded images on local disk and hands back the public
// path they are served under.
type Store struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Save validates the file before anything touches disk: disallowed
// extensions and oversized files are rejected without a partial write.
// Filenames get a timestamp plus random prefix so concurrent uploads of
// the same image cannot collide.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: only image files are allowed (jpg, jpeg, png, gif, svg)", common.ErrValidation)
	}
	if header.Size > s.maxBytes {
		return "", fmt.Errorf("%w: file exceeds the %d byte limit", common.ErrValidation, s.maxBytes)
	}

	base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	name := fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], slug.Make(base), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	// The size header is client-supplied; cap the actual copy as well.
	written, err := io.Copy(dst, io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: file exceeds the %d byte limit", common.ErrValidation, s.maxBytes)
	}

	return "/uploads/" + name, nil
}
