package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Storage is the object store holding sealed case snapshots.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	PresignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// SealedSnapshotKey is the object key of the latest sealed snapshot of a case.
func SealedSnapshotKey(caseID uuid.UUID) string {
	return "cases/" + caseID.String() + "/sealed.json"
}

// SealedHistoryKey is the object key of a sealed snapshot taken at a point in time.
func SealedHistoryKey(caseID uuid.UUID, at time.Time) string {
	return "cases/" + caseID.String() + "/history/" + at.UTC().Format("20060102T150405.000000000Z") + ".json"
}
