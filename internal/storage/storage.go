package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 indicates the loaded content is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrNotFound indicates no document is stored under the requested name.
	ErrNotFound = errors.New("no such document")
)

// Storage provides the text content searched by the application.
type Storage interface {
	Load(name string) (string, error)
}

// FileStorage loads content from the local filesystem.
type FileStorage struct{}

// NewFileStorage returns a Storage backed by the local filesystem.
func NewFileStorage() *FileStorage {
	return &FileStorage{}
}

// Load reads the whole file into memory and validates it as UTF-8.
func (s *FileStorage) Load(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		// *fs.PathError already names the operation and the path.
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}
	return string(data), nil
}

// MemoryStorage keeps named documents in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu        sync.RWMutex
	documents map[string]string
}

// NewMemoryStorage initialises an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		documents: make(map[string]string),
	}
}

// Put validates and stores content under name, replacing any previous document.
func (s *MemoryStorage) Put(name, content string) error {
	if !utf8.ValidString(content) {
		return fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}

	s.mu.Lock()
	s.documents[name] = content
	s.mu.Unlock()

	return nil
}

// Load returns the document stored under name.
func (s *MemoryStorage) Load(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.documents[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return content, nil
}
