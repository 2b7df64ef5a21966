package rankings

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"player-enricher/core/sheet"
	"player-enricher/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrSourceNotFound is returned when a prefix holds no readable upload.
var ErrSourceNotFound = errors.New("ranking source not found")

// LatestObject returns the most recently modified spreadsheet under prefix.
// Ties on modification time go to the greatest key.
func LatestObject(ctx context.Context, client storage.Client, bucket, prefix string) (minio.ObjectInfo, error) {
	var latest minio.ObjectInfo
	found := false

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return minio.ObjectInfo{}, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if !slices.Contains(sheet.Extensions, strings.ToLower(path.Ext(obj.Key))) {
			continue
		}
		if !found || obj.LastModified.After(latest.LastModified) ||
			(obj.LastModified.Equal(latest.LastModified) && obj.Key > latest.Key) {
			latest = obj
			found = true
		}
	}

	if !found {
		return minio.ObjectInfo{}, fmt.Errorf("%w: %s", ErrSourceNotFound, prefix)
	}
	return latest, nil
}

// Loader reads ranking workbooks from the bucket.
type Loader struct {
	client storage.Client
	bucket string
}

// NewLoader creates a new ranking loader.
func NewLoader(client storage.Client, bucket string) *Loader {
	return &Loader{client: client, bucket: bucket}
}

// Load decodes the latest upload of profile p.
func (l *Loader) Load(ctx context.Context, p Profile) (*sheet.Workbook, minio.ObjectInfo, error) {
	obj, err := LatestObject(ctx, l.client, l.bucket, p.Prefix)
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}

	rc, err := l.client.GetObject(ctx, l.bucket, obj.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, obj, fmt.Errorf("failed to get %s: %w", obj.Key, err)
	}
	defer rc.Close()

	wb, err := sheet.Decode(obj.Key, rc)
	if err != nil {
		return nil, obj, fmt.Errorf("failed to decode %s: %w", obj.Key, err)
	}
	return wb, obj, nil
}

// UploadKey builds the object key for a new upload of profile p.
func UploadKey(p Profile, filename string, stamp string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return p.Prefix + stamp + "_" + base
}
