package service

import (
	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// Parser is an interface that abstracts chat parsing operations
// This allows for easier testing and mocking
type Parser interface {
	Parse(text string, opts chatbet.Options) (*models.ParseResult, error)
	ParseOrder(text string, opts chatbet.Options) (*models.ParseResult, error)
	ParseFill(text string, opts chatbet.Options) (*models.ParseResult, error)
}
