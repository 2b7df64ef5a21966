package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"player-enricher/core/storage"
	"player-enricher/feature/players/rankings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RegistryFolder holds the registry document.
const RegistryFolder = "registry"

// RequiredFolders lists the folders that must exist in the bucket: one per
// ranking format plus the registry folder.
func RequiredFolders() []string {
	out := make([]string, 0, len(rankings.Profiles)+1)
	for _, p := range rankings.Profiles {
		out = append(out, strings.TrimSuffix(p.Prefix, "/"))
	}
	return append(out, RegistryFolder)
}

// CheckStructure returns a list of missing folders.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range RequiredFolders() {
		opts := minio.ListObjectsOptions{
			Prefix:    folder + "/",
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			found = obj.Err == nil
			break
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the missing folders as empty marker objects.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		folderPath := folder
		if !strings.HasSuffix(folderPath, "/") {
			folderPath += "/"
		}

		_, err := client.PutObject(ctx, bucket, folderPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
