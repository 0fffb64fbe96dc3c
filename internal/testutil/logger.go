package testutil

import (
	"io"
	"log/slog"
	"time"

	"github.com/dtroode/casekeeper-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}

// FixedTime is a stable instant for tests comparing timestamps.
func FixedTime() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}
