package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// EmbeddedSource serves the seed compiled into the binary
type EmbeddedSource struct {
	now func() time.Time
}

// NewEmbeddedSource creates the built-in seed source
func NewEmbeddedSource(now func() time.Time) *EmbeddedSource {
	return &EmbeddedSource{now: now}
}

// Name returns the source name
func (s *EmbeddedSource) Name() string { return "embedded" }

// Load decodes the built-in seed
func (s *EmbeddedSource) Load(ctx context.Context) (*Data, error) {
	return Decode(bytes.NewReader(defaultSeed), s.now())
}

// FileSource reads a YAML seed from disk
type FileSource struct {
	path string
	now  func() time.Time
}

// NewFileSource creates a file seed source
func NewFileSource(path string, now func() time.Time) *FileSource {
	return &FileSource{path: path, now: now}
}

// Name returns the source name
func (s *FileSource) Name() string { return "file" }

// Load reads and decodes the seed file
func (s *FileSource) Load(ctx context.Context) (*Data, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	return Decode(f, s.now())
}

// ObjectGetter fetches an object from blob storage
type ObjectGetter interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// ObjectSource reads a YAML seed object from S3-compatible storage
type ObjectSource struct {
	objects ObjectGetter
	key     string
	now     func() time.Time
}

// NewObjectSource creates an object storage seed source
func NewObjectSource(objects ObjectGetter, key string, now func() time.Time) *ObjectSource {
	return &ObjectSource{objects: objects, key: key, now: now}
}

// Name returns the source name
func (s *ObjectSource) Name() string { return "s3" }

// Load downloads and decodes the seed object
func (s *ObjectSource) Load(ctx context.Context) (*Data, error) {
	body, err := s.objects.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("fetching seed object %q: %w", s.key, err)
	}
	defer body.Close()

	return Decode(body, s.now())
}
