package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type fsStore struct {
	dir     string
	baseURL string
}

// NewFilesystem stores objects as files under dir. Keys are sanitized to a
// single path element, so no traversal outside dir.
func NewFilesystem(dir, baseURL string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fsStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *fsStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *fsStore) Put(ctx context.Context, key, contentType string, r io.Reader) (Info, error) {
	f, err := os.Create(s.path(key))
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		ContentType: contentType,
		Size:        n,
	}, nil
}

func (s *fsStore) Get(ctx context.Context, key string) (io.ReadCloser, Info, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Info{}, ErrNotFound
		}
		return nil, Info{}, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, Info{}, err
	}

	return f, Info{
		Key:  key,
		URL:  s.baseURL + "/" + key,
		Size: st.Size(),
	}, nil
}

func (s *fsStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
