package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ImageTypes is the allow-list for the image field.
var ImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DocumentTypes is the allow-list for the description field (images plus PDF).
var DocumentTypes = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"application/pdf": "pdf",
}

var ErrUploadFailed = errors.New("upload failed")

// UnsupportedTypeError reports the content type actually detected from the
// file's bytes, which is the only type the store ever trusts.
type UnsupportedTypeError struct {
	Field    string
	Detected string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("file type not allowed for %s: %s", e.Field, e.Detected)
}

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Accept reads the named multipart field and stores the upload under a random
// name inside the products directory. A missing field is not an error: both
// asset fields are optional, so Accept returns ("", nil).
//
// The stored extension comes from the sniffed content type, never from the
// client-supplied filename, and the returned path is relative to the store
// root so it can be persisted and later served or reclaimed.
func (s *Store) Accept(r *http.Request, field string, allowed map[string]string) (string, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		log.Printf("Accept: upload error for field %s: %v", field, err)
		return "", fmt.Errorf("%w for %s", ErrUploadFailed, field)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("%w for %s", ErrUploadFailed, field)
	}
	ext, ok := allowed[mtype.String()]
	if !ok {
		return "", &UnsupportedTypeError{Field: field, Detected: mtype.String()}
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w for %s", ErrUploadFailed, field)
	}

	name, err := randomName()
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	filename := name + "." + ext

	dir := filepath.Join(s.root, "products")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dest := filepath.Join(dir, filename)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to store upload for %s: %w", field, err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("failed to store upload for %s: %w", field, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to store upload for %s: %w", field, err)
	}

	return "products/" + filename, nil
}

// Reclaim deletes a stored asset. It is best-effort: the owning database
// write has already committed, so failures are only logged. Paths that
// resolve outside the store root are refused.
func (s *Store) Reclaim(path string) {
	if path == "" {
		return
	}

	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return
	}
	target, err := filepath.Abs(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		return
	}
	if !strings.HasPrefix(target, rootAbs+string(os.PathSeparator)) {
		log.Printf("Reclaim: refusing to delete %q outside upload root", path)
		return
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		log.Printf("Reclaim: failed to remove %s: %v", path, err)
	}
}

// Root returns the configured storage root, used by the static file route.
func (s *Store) Root() string {
	return s.root
}

func randomName() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
