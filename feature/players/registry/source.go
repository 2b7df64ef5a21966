package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"player-enricher/core/reconcile"
	"player-enricher/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source opens the registry document.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Load opens src and decodes it.
func Load(ctx context.Context, src Source) (*reconcile.Relation, Report, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, Report{}, err
	}
	defer rc.Close()

	rel, report, err := Decode(rc)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", src, err)
	}
	return rel, report, nil
}

// ObjectSource reads the registry from the bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Key    string
}

func (s ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	// GetObject is lazy on minio; stat first so a missing key fails here.
	if _, err := s.Client.StatObject(ctx, s.Bucket, s.Key, minio.StatObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", s, err)
	}
	rc, err := s.Client.GetObject(ctx, s.Bucket, s.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s, err)
	}
	return rc, nil
}

func (s ObjectSource) String() string {
	return "s3://" + s.Bucket + "/" + s.Key
}

// URLSource downloads the registry over HTTP.
type URLSource struct {
	URL    string
	Client *http.Client
}

func (s URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: status %d", s.URL, resp.StatusCode)
	}
	return resp.Body, nil
}

func (s URLSource) String() string {
	return s.URL
}

// FileSource reads the registry from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Open(context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	return f, nil
}

func (s FileSource) String() string {
	return s.Path
}
