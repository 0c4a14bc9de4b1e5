// internal/storage/local.go
package storage

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how many leading bytes mimetype inspects.
const sniffLen = 3072

// StoredFile describes a file written by LocalStore.
type StoredFile struct {
	Name string
	URL  string
	MIME string
	Size int64
}

// LocalStore writes uploads into a directory served under URLPrefix.
type LocalStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	now       func() time.Time
}

func NewLocalStore(dir, urlPrefix string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Save stores r as <unixms>-<random><ext>. The extension comes from originalName, or from the
// sniffed content type when the name has none. Files over the size limit are removed and
// reported as domain.ErrFileTooLarge.
func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName string) (*StoredFile, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, domain.ErrMissingFile
	}

	mtype := mimetype.Detect(head)
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = mtype.Extension()
	}

	suffix, err := randomSuffix()
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), suffix, ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), s.maxBytes+1)
	written, copyErr := io.Copy(f, body)
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		os.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", copyErr)
	case closeErr != nil:
		os.Remove(path)
		return nil, fmt.Errorf("failed to close upload: %w", closeErr)
	case written > s.maxBytes:
		os.Remove(path)
		return nil, domain.ErrFileTooLarge
	}

	if err := ctx.Err(); err != nil {
		os.Remove(path)
		return nil, err
	}

	return &StoredFile{
		Name: name,
		URL:  s.urlPrefix + "/" + name,
		MIME: mtype.String(),
		Size: written,
	}, nil
}

func randomSuffix() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	return hex.EncodeToString(b), nil
}
