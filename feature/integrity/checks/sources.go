package checks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"player-enricher/core/storage"
	"player-enricher/feature/players/rankings"
	"player-enricher/feature/players/registry"

	"github.com/minio/minio-go/v7"
)

// UploadStatus describes the upload a run would read for one format.
type UploadStatus struct {
	Format       string    `json:"format"`
	Prefix       string    `json:"prefix"`
	Key          string    `json:"key,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Status       string    `json:"status"` // "ok", "missing", "error"
	Error        string    `json:"error,omitempty"`
}

// CheckUploads reports the latest upload of every ranking format.
func CheckUploads(ctx context.Context, client storage.Client, bucket string) []UploadStatus {
	out := make([]UploadStatus, 0, len(rankings.Profiles))
	for _, p := range rankings.Profiles {
		st := UploadStatus{Format: p.Format, Prefix: p.Prefix, Status: "ok"}

		obj, err := rankings.LatestObject(ctx, client, bucket, p.Prefix)
		switch {
		case errors.Is(err, rankings.ErrSourceNotFound):
			st.Status = "missing"
		case err != nil:
			st.Status = "error"
			st.Error = err.Error()
		default:
			st.Key = obj.Key
			st.LastModified = obj.LastModified
		}
		out = append(out, st)
	}
	return out
}

// RegistryReport describes the registry document in the bucket.
type RegistryReport struct {
	Key          string          `json:"key"`
	Exists       bool            `json:"exists"`
	Size         int64           `json:"size"`
	LastModified time.Time       `json:"last_modified,omitempty"`
	Players      registry.Report `json:"players"`
	Status       string          `json:"status"` // "ok", "missing", "error"
	Error        string          `json:"error,omitempty"`
}

// CheckRegistry stats the registry object and, when present, decodes it.
func CheckRegistry(ctx context.Context, client storage.Client, bucket, key string) *RegistryReport {
	report := &RegistryReport{Key: key, Status: "ok"}

	info, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			report.Status = "missing"
		} else {
			report.Status = "error"
			report.Error = err.Error()
		}
		return report
	}
	report.Exists = true
	report.Size = info.Size
	report.LastModified = info.LastModified

	_, players, err := registry.Load(ctx, registry.ObjectSource{Client: client, Bucket: bucket, Key: key})
	if err != nil {
		report.Status = "error"
		report.Error = fmt.Sprintf("unreadable registry: %v", err)
		return report
	}
	report.Players = players
	return report
}
