package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"player-enricher/core/reconcile"
	"player-enricher/core/utils"
	"player-enricher/feature/players/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned by Get for an unknown id.
	ErrNotFound = errors.New("player not found")
	// ErrPartialWrite is returned when at least one chunk failed.
	ErrPartialWrite = errors.New("partial write")
)

// DefaultBatchSize is used when Write is given a size below 1.
const DefaultBatchSize = 25

// lookupChunk bounds the IN list of GetMany.
const lookupChunk = 100

// ChunkFailure records one failed chunk.
type ChunkFailure struct {
	Index int      `json:"index"`
	IDs   []string `json:"ids"`
	Error string   `json:"error"`
}

// WriteReport summarizes a Write.
type WriteReport struct {
	Rows    int            `json:"rows"`
	Chunks  int            `json:"chunks"`
	Written int            `json:"written"`
	Failed  []ChunkFailure `json:"failed,omitempty"`
}

// Err returns ErrPartialWrite when any chunk failed.
func (r WriteReport) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d chunks failed", ErrPartialWrite, len(r.Failed), r.Chunks)
}

// Repository reads and upserts master records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the player_values table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&models.PlayerValue{})
}

// ToModels converts the master relation into rows. Null fields are left out
// of the stored document.
func ToModels(master *reconcile.Relation, now time.Time) ([]models.PlayerValue, error) {
	out := make([]models.PlayerValue, 0, master.Len())
	for _, rec := range master.Records {
		id := rec.Text(reconcile.FieldPlayerID)
		if id == "" {
			return nil, fmt.Errorf("%w: master record without %s", reconcile.ErrMissingKey, reconcile.FieldPlayerID)
		}

		doc, err := json.Marshal(rec.Compact())
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", id, err)
		}

		out = append(out, models.PlayerValue{
			SleeperID:   id,
			FullName:    rec.Text("full_name"),
			Position:    rec.Text("position"),
			Team:        rec.Text("team"),
			Document:    string(doc),
			LastUpdated: now.UTC(),
		})
	}
	return out, nil
}

// Write upserts rows in chunks of batchSize. Each chunk is one INSERT in
// its own transaction.
// Chunks run in order; a failed chunk is recorded and the rest still run.
// Earlier chunks are never rolled back.
func (r *Repository) Write(ctx context.Context, rows []models.PlayerValue, batchSize int) WriteReport {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	chunks := utils.Chunk(rows, batchSize)
	report := WriteReport{Rows: len(rows), Chunks: len(chunks)}

	for i, chunk := range chunks {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sleeper_id"}},
			UpdateAll: true,
		}).Create(&chunk).Error
		if err != nil {
			report.Failed = append(report.Failed, ChunkFailure{Index: i, IDs: idsOf(chunk), Error: err.Error()})
			continue
		}
		report.Written += len(chunk)
	}

	return report
}

// Get loads one record.
func (r *Repository) Get(ctx context.Context, id string) (*models.PlayerValue, error) {
	var row models.PlayerValue
	err := r.db.WithContext(ctx).Where("sleeper_id = ?", strings.TrimSpace(id)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", id, err)
	}
	return &row, nil
}

// GetMany loads the records for ids. Unknown ids are left out; order follows
// ids, first occurrence only.
func (r *Repository) GetMany(ctx context.Context, ids []string) ([]models.PlayerValue, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	byID := make(map[string]models.PlayerValue, len(unique))
	for _, chunk := range utils.Chunk(unique, lookupChunk) {
		var rows []models.PlayerValue
		if err := r.db.WithContext(ctx).Where("sleeper_id IN ?", chunk).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get players: %w", err)
		}
		for _, row := range rows {
			byID[row.SleeperID] = row
		}
	}

	out := make([]models.PlayerValue, 0, len(byID))
	for _, id := range unique {
		if row, ok := byID[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// List pages through records ordered by id.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.PlayerValue, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PlayerValue{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	var rows []models.PlayerValue
	if err := r.db.WithContext(ctx).Order("sleeper_id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}
	return rows, total, nil
}

func idsOf(rows []models.PlayerValue) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.SleeperID
	}
	return out
}
