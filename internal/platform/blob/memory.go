package blob

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	baseURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemory keeps objects in process memory. baseURL prefixes returned URLs.
func NewMemory(baseURL string) Store {
	return &memoryStore{
		objects: make(map[string]memoryObject),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *memoryStore) Put(ctx context.Context, key, contentType string, r io.Reader) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}

	s.mu.Lock()
	s.objects[key] = memoryObject{data: data, contentType: contentType}
	s.mu.Unlock()

	return Info{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *memoryStore) Get(ctx context.Context, key string) (io.ReadCloser, Info, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return nil, Info{}, ErrNotFound
	}
	info := Info{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		ContentType: obj.contentType,
		Size:        int64(len(obj.data)),
	}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		return ErrNotFound
	}
	delete(s.objects, key)
	return nil
}
