package service

import (
	"context"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
)

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, text string, result *models.ParseResult) error
	Get(ctx context.Context, text string) (*models.ParseResult, error)
	SetBatch(ctx context.Context, texts []string, results []*models.ParseResult) error
	Ping(ctx context.Context) error
	Close() error
}
