package players

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"slices"
	"strings"
	"time"

	"player-enricher/core/metrics"
	"player-enricher/core/reconcile"
	"player-enricher/core/sheet"
	"player-enricher/core/storage"
	"player-enricher/feature/players/models"
	"player-enricher/feature/players/rankings"
	"player-enricher/feature/players/registry"
	"player-enricher/feature/players/sink"
	"player-enricher/feature/players/valuation"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Valuer fetches the valuation relation.
type Valuer interface {
	Fetch(ctx context.Context) (*reconcile.Relation, valuation.Report, error)
}

// Service runs the pipeline and serves the stored master records.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	repo     *sink.Repository
	cfg      Config
	values   Valuer
	rankings *rankings.Loader
	metrics  *metrics.Manager
	runs     singleflight.Group
	now      func() time.Time
}

// NewService creates a new players service. A nil db leaves lookups and
// writes unavailable; dry runs still work.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config, values Valuer, m *metrics.Manager) *Service {
	var repo *sink.Repository
	if db != nil {
		repo = sink.NewRepository(db)
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		repo:     repo,
		cfg:      cfg,
		values:   values,
		rankings: rankings.NewLoader(client, bucket),
		metrics:  m,
		now:      time.Now,
	}
}

// Migrate creates the sink table.
func (s *Service) Migrate() error {
	if s.repo == nil {
		return ErrNoDatabase
	}
	return s.repo.Migrate()
}

// RegistrySource returns where the registry is read from by default.
func (s *Service) RegistrySource() registry.Source {
	if s.cfg.RegistryURL != "" {
		return registry.URLSource{URL: s.cfg.RegistryURL, Client: &http.Client{Timeout: time.Minute}}
	}
	return registry.ObjectSource{Client: s.client, Bucket: s.bucket, Key: s.cfg.RegistryObject}
}

// GetPlayer returns the stored master record for id.
func (s *Service) GetPlayer(ctx context.Context, id string) (models.Player, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.ToPlayer()
}

// GetPlayers returns the stored records for ids, skipping unknown ones.
func (s *Service) GetPlayers(ctx context.Context, ids []string) ([]models.Player, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	rows, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toPlayers(rows)
}

// ListPlayers pages through the stored records.
func (s *Service) ListPlayers(ctx context.Context, limit, offset int) (*models.PlayerPage, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	rows, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items, err := toPlayers(rows)
	if err != nil {
		return nil, err
	}
	return &models.PlayerPage{Total: total, Limit: limit, Offset: offset, Items: items}, nil
}

func toPlayers(rows []models.PlayerValue) ([]models.Player, error) {
	out := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		p, err := row.ToPlayer()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// UploadResult describes a stored ranking upload.
type UploadResult struct {
	Format string `json:"format"`
	Key    string `json:"key"`
	Size   int64  `json:"size"`
}

// Upload stores a ranking spreadsheet under the prefix of format, where the
// next run will pick it up as the latest upload.
func (s *Service) Upload(ctx context.Context, format, filename string, r io.Reader, size int64) (*UploadResult, error) {
	p, ok := rankings.ProfileByName(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if !slices.Contains(sheet.Extensions, strings.ToLower(path.Ext(filename))) {
		return nil, fmt.Errorf("%w: %s", sheet.ErrUnsupportedFormat, filename)
	}

	key := rankings.UploadKey(p, filename, s.now().UTC().Format("20060102T150405Z"))
	contentType := "text/csv"
	if strings.EqualFold(path.Ext(filename), ".xlsx") {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", key, err)
	}
	s.logger.Info("Ranking uploaded", zap.String("format", p.Format), zap.String("key", key), zap.Int64("size", info.Size))

	return &UploadResult{Format: p.Format, Key: key, Size: info.Size}, nil
}
