package integrity

import (
	"context"

	"player-enricher/core/storage"
	"player-enricher/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client      storage.Client
	bucket      string
	logger      *zap.Logger
	db          *gorm.DB
	registryKey string
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, registryKey string) *Service {
	return &Service{
		client:      client,
		bucket:      bucket,
		logger:      logger,
		db:          db,
		registryKey: registryKey,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckUploads reports the latest upload of every ranking format.
func (s *Service) CheckUploads(ctx context.Context) []checks.UploadStatus {
	return checks.CheckUploads(ctx, s.client, s.bucket)
}

// CheckRegistry reports on the registry document.
func (s *Service) CheckRegistry(ctx context.Context) *checks.RegistryReport {
	return checks.CheckRegistry(ctx, s.client, s.bucket, s.registryKey)
}

// CheckSink verifies the sink table schema.
func (s *Service) CheckSink() (*checks.SchemaReport, error) {
	return checks.CheckSinkSchema(s.db)
}
