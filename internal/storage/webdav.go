package storage

import (
	"fmt"
	"io"
	"path"

	"github.com/studio-b12/gowebdav"
)

// uploadDir is the collection all uploaded images live under.
const uploadDir = "/image-upload"

// ObjectStore reads and writes binary objects addressed by opaque ids.
type ObjectStore interface {
	Put(id string, body io.Reader) error
	Get(id string) (io.ReadCloser, error)
}

// WebDAVStore stores objects on a remote WebDAV share.
type WebDAVStore struct {
	client *gowebdav.Client
}

// Ensure WebDAVStore implements ObjectStore
var _ ObjectStore = (*WebDAVStore)(nil)

// NewWebDAVStore connects to the WebDAV share at url with basic auth.
func NewWebDAVStore(url, username, password string) *WebDAVStore {
	return &WebDAVStore{client: gowebdav.NewClient(url, username, password)}
}

// Put streams body to the object identified by id.
func (s *WebDAVStore) Put(id string, body io.Reader) error {
	if err := s.client.WriteStream(path.Join(uploadDir, id), body, 0644); err != nil {
		return fmt.Errorf("webdav put %s: %w", id, err)
	}
	return nil
}

// Get opens the object identified by id for reading. The caller closes it.
func (s *WebDAVStore) Get(id string) (io.ReadCloser, error) {
	stream, err := s.client.ReadStream(path.Join(uploadDir, id))
	if err != nil {
		return nil, fmt.Errorf("webdav get %s: %w", id, err)
	}
	return stream, nil
}
