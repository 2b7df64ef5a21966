// Package storage wraps the MinIO client for S3-compatible object storage.
//
// The bucket holds the ranking spreadsheets uploaded per format (for example
// uploads/superflex/) and, optionally, the registry document. The Client
// interface is the seam mocked in tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks for the integrity feature.
//   - ListObjects: finds the newest upload under a prefix.
//   - GetObject / StatObject: reads spreadsheets and the registry.
//   - PutObject: stores uploads and folder markers.
//
//	client, err := storage.NewClient(cfg.Storage)
//	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: "uploads/superflex/", Recursive: true}) {
//	    ...
//	}
package storage
