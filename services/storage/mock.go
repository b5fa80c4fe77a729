package storagesvc

import (
	"context"
	"io"
	"sync"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

// MockStore is an in-memory ObjectStore for tests.
type MockStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	removed   []string
	putErr    error
	removeErr error
}

var _ core.ObjectStore = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func objectID(bucket, key string) string { return bucket + "/" + key }

// FailPut makes every Put fail with err; nil restores them.
func (s *MockStore) FailPut(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putErr = err
}

// FailRemove makes every Remove fail with err; nil restores them.
func (s *MockStore) FailRemove(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeErr = err
}

func (s *MockStore) Put(_ context.Context, bucket, key string, r io.Reader, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return "", s.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.objects[objectID(bucket, key)] = data
	s.types[objectID(bucket, key)] = contentType
	return s.PublicURL(bucket, key), nil
}

func (s *MockStore) Remove(_ context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, objectID(bucket, key))
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.objects, objectID(bucket, key))
	delete(s.types, objectID(bucket, key))
	return nil
}

func (s *MockStore) Exists(_ context.Context, bucket, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectID(bucket, key)]
	return ok, nil
}

func (s *MockStore) PublicURL(bucket, key string) string {
	return "https://storage.test/" + bucket + "/" + key
}

// Object returns the content and content type of a stored object.
func (s *MockStore) Object(bucket, key string) ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[objectID(bucket, key)]
	return data, s.types[objectID(bucket, key)], ok
}

// Len returns the number of stored objects.
func (s *MockStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Removed returns the "<bucket>/<key>" of every Remove call, failed ones included.
func (s *MockStore) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removed...)
}
