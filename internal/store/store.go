// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/Prasannaverse13/FixMyCode/internal/domain"
)

// Store defines the interface for data persistence. Both collections are
// append-only; records are never updated or deleted.
type Store interface {
	// Chat message operations
	CreateMessage(ctx context.Context, message *domain.ChatMessage) error
	GetMessages(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)

	// Analysis record operations
	CreateAnalysis(ctx context.Context, record *domain.AnalysisRecord) error
	GetAnalysis(ctx context.Context, analysisID string) (*domain.AnalysisRecord, error)

	// Lifecycle
	Close() error
}
